package samples

import (
	"github.com/utsurius/actionable-messages/card"
	"github.com/utsurius/actionable-messages/teamscard"
)

func hero(p Params) Card {
	c := card.Must(teamscard.NewHeroCard(nil, p.CardOptions...))
	tr := translator(c)
	c.SetTitle(tr("Seattle Center Monorail"))
	c.SetSubtitle(tr("Seattle Center Monorail"))
	c.SetText("The Seattle Center Monorail is an elevated train line between Seattle Center (near the Space Needle) " +
		"and downtown Seattle. It was built for the 1962 World's Fair. Its original two trains, completed in 1961, " +
		"are still in service.")
	must(c.AddImages(teamscard.NewImage(
		"https://upload.wikimedia.org/wikipedia/commons/thumb/4/49/Seattle_monorail01_2008-02-25.jpg/1024px-Seattle_monorail01_2008-02-25.jpg",
		"Seattle Center Monorail",
	)))
	must(c.AddButtons(
		teamscard.NewOpenURL(tr("Official website"), "https://www.seattlemonorail.com"),
		teamscard.NewOpenURL(tr("Wikipedia page"), "https://en.wikipedia.org/wiki/Seattle_Center_Monorail"),
	))
	return c
}

func thumbnail(p Params) Card {
	return card.Must(teamscard.NewThumbnailCard(&teamscard.Options{
		Title:    "Task created: reminder to finish sales projections",
		Subtitle: "Assigned to: Claude Grady",
		Text:     "Sint incidunt voluptates facilis",
		Images:   []*teamscard.Image{teamscard.NewImage("https://tasks.contoso.com/assets/task.png", "Task")},
		Buttons: []*teamscard.OpenURL{
			teamscard.NewOpenURL("View task", p.actionURL("view-task")),
			teamscard.NewOpenURL("Assign to me", p.actionURL("assign-task")),
		},
	}, p.CardOptions...))
}
