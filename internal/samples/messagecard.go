package samples

import (
	"github.com/utsurius/actionable-messages/card"
	mc "github.com/utsurius/actionable-messages/messagecard"
)

const oscarImage = "https://connectorsdemo.azurewebsites.net/images/MSC12_Oscar_002.jpg"

func section(opts *mc.SectionOptions) *mc.Section { return card.Must(mc.NewSection(opts)) }

// post returns an HttpPOST sending the card inputs as JSON to the action
// endpoint called name.
func post(p Params, title, name, body string) *mc.HTTPPost {
	return card.Must(mc.NewHTTPPost(title, p.actionURL(name), &mc.HTTPPostOptions{
		Body:            body,
		BodyContentType: "application/json",
	}))
}

func actionCard(name string, input mc.Input, ok mc.Action) *mc.ActionCard {
	return card.Must(mc.NewActionCard(name, []mc.Input{input}, []mc.Action{ok}))
}

func multiline(id, title string) *mc.TextInput {
	return mc.NewTextInput(&mc.TextInputOptions{InputOptions: mc.InputOptions{ID: id, Title: title}, IsMultiline: true})
}

func openURI(name, uri string) *mc.OpenURI {
	return card.Must(mc.NewOpenURI(name, mc.NewActionTarget(mc.OSDefault, uri)))
}

func github(p Params) Card {
	c := mc.NewMessageCard(&mc.Options{
		Title:      `Issue opened: "Push notifications not working"`,
		Summary:    "Issue 176715375",
		ThemeColor: "0078D7",
	}, p.CardOptions...)
	must(c.AddSections(section(&mc.SectionOptions{
		ActivityTitle:    "Miguel Garcie",
		ActivitySubtitle: "9/13/2016, 11:46am",
		ActivityImage:    oscarImage,
		Text:             "There is a problem with Push notifications, they don't seem to be picked up by the connector.",
		Facts: []*mc.Fact{
			mc.NewFact("Repository:", `mgarcia\test`),
			mc.NewFact("Issue #:", "176715375"),
		},
	})))
	must(c.AddActions(
		actionCard("Add a comment", multiline("comment", "Enter a comment"),
			post(p, "OK", "github-comment", `{"issue":176715375,"comment":"{{comment.value}}"}`)),
		post(p, "Close", "github-close", `{"issue":176715375}`),
		openURI("View in Github", "https://github.com/mgarcia/test/issues/176715375"),
	))
	return c
}

const flowFooter = "Grant approvals directly from your mobile device with the Microsoft Flow app. " +
	"[Learn more](https://learnmode)\n\nThis message was created by an automated workflow in Microsoft Flow. Do not reply."

func office365Connector(p Params) Card {
	reason := func() *mc.TextInput { return multiline("comment", "Reason (optional)") }
	c := mc.NewMessageCard(&mc.Options{Summary: "This is the summary property", ThemeColor: "0075FF"}, p.CardOptions...)
	must(c.AddSections(
		section(&mc.SectionOptions{
			HeroImage: mc.NewHeroImage("https://messagecardplayground.azurewebsites.net/assets/FlowLogo.png", ""),
		}),
		section(&mc.SectionOptions{
			StartGroup:       true,
			Title:            "**Pending approval**",
			ActivityImage:    oscarImage,
			ActivityTitle:    "Requested by **Miguel Garcia**",
			ActivitySubtitle: "m.garcia@contoso.com",
			Facts: []*mc.Fact{
				mc.NewFact("Date submitted:", "06/27/2017, 2:44 PM"),
				mc.NewFact("Details:", "Please approve the awesome changes I made to this fantastic document."),
				mc.NewFact("Link:", "[Link to the awesome document.pptx](https://awesomedocument)"),
			},
		}),
		section(&mc.SectionOptions{
			Actions: []mc.Action{
				actionCard("Approve", reason(), post(p, "OK", "flow-approval", `{"decision":"approve","comment":"{{comment.value}}"}`)),
				actionCard("Reject", reason(), post(p, "OK", "flow-approval", `{"decision":"reject","comment":"{{comment.value}}"}`)),
			},
		}),
		section(&mc.SectionOptions{StartGroup: true, ActivitySubtitle: flowFooter}),
	))
	return c
}

func trello(p Params) Card {
	c := mc.NewMessageCard(&mc.Options{
		Title:      `Card created: "Name of card"`,
		Summary:    `Card "Test card"`,
		ThemeColor: "0078D7",
	}, p.CardOptions...)
	must(c.AddSections(section(&mc.SectionOptions{
		ActivityTitle:    "Miguel Garcia",
		ActivitySubtitle: "9/13/2016, 3:34pm",
		ActivityImage:    oscarImage,
		Facts: []*mc.Fact{
			mc.NewFact("Board:", "Name of board"),
			mc.NewFact("List:", "Name of list"),
			mc.NewFact("Assigned to:", "(none)"),
			mc.NewFact("Due date:", "(none)"),
		},
	})))

	move := card.Must(mc.NewMultichoiceInput(
		&mc.MultichoiceInputOptions{InputOptions: mc.InputOptions{ID: "move", Title: "Pick a list"}},
		mc.NewInputChoice("List 1", "l1"),
		mc.NewInputChoice("List 2", "l2"),
	))
	must(c.AddActions(
		actionCard("Set due date",
			mc.NewDateInput(&mc.DateInputOptions{InputOptions: mc.InputOptions{ID: "dueDate", Title: "select a date"}}),
			post(p, "OK", "trello-due", `{"dueDate":"{{dueDate.value}}"}`)),
		actionCard("Move", move, post(p, "OK", "trello-move", `{"list":"{{move.value}}"}`)),
		actionCard("Add a comment", multiline("comment", "Enter your comment"),
			post(p, "OK", "trello-comment", `{"comment":"{{comment.value}}"}`)),
		openURI("View in Trello", "https://trello.com/c/name-of-card"),
	))
	return c
}

func tinyPulse(p Params) Card {
	c := mc.NewMessageCard(&mc.Options{Summary: "Poll: What do you love about your job?", ThemeColor: "E81123"}, p.CardOptions...)
	must(c.AddSections(
		section(&mc.SectionOptions{
			HeroImage: mc.NewHeroImage("https://messagecardplayground.azurewebsites.net/assets/TINYPulseEngageBanner.png", ""),
		}),
		section(&mc.SectionOptions{
			StartGroup:    true,
			ActivityTitle: "**What do you love about your job?**",
			ActivityText:  "It can be nothing, everything, and anything in between. Sharing is caring.",
			Actions: []mc.Action{
				actionCard("Yes", multiline("comment", "Feel free to elaborate"),
					post(p, "Answer anonymously", "tiny-pulse", `{"poll":"love-your-job","comment":"{{comment.value}}"}`)),
			},
		}),
		section(&mc.SectionOptions{
			ActivityTitle:    "**Streak: 0** surveys in a row",
			ActivitySubtitle: "Survey expires in 15 days on 4/6/2017",
		}),
	))
	return c
}
