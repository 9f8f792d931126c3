package samples

import (
	ac "github.com/utsurius/actionable-messages/adaptivecard"
	"github.com/utsurius/actionable-messages/adaptivecard/outlook"
	"github.com/utsurius/actionable-messages/card"
)

func newAdaptiveCard(p Params, opts *ac.Options) *ac.AdaptiveCard {
	return card.Must(ac.NewAdaptiveCard(opts, p.CardOptions...))
}

func v10() *ac.Options { return &ac.Options{Version: "1.0", Schema: ac.SchemaURL} }

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func column(width any, opts *ac.ContainerOptions, items ...ac.Element) *ac.Column {
	c := card.Must(ac.NewColumn(opts, items...))
	if width != nil {
		must(c.SetWidth(width))
	}
	return c
}

func columnSet(opts *ac.ColumnSetOptions, cols ...*ac.Column) *ac.ColumnSet {
	return card.Must(ac.NewColumnSet(opts, cols...))
}

func spacing(s ac.Spacing) ac.ElementOptions { return ac.ElementOptions{Spacing: s} }

func submit(title string, data any) *ac.Submit {
	return ac.NewSubmit(&ac.SubmitOptions{ActionOptions: ac.ActionOptions{Title: title}, Data: data})
}

func showCard(title string, c *ac.AdaptiveCard) *ac.ShowCard {
	return ac.NewShowCard(c, &ac.ActionOptions{Title: title})
}

func activityUpdate(p Params) Card {
	c := newAdaptiveCard(p, v10())
	must(c.AddElements(
		ac.NewTextBlock("Publish Adaptive Card schema", &ac.TextBlockOptions{Size: ac.FontSizeMedium, Weight: ac.FontWeightBolder}),
		columnSet(nil,
			column(ac.WidthAuto, nil, ac.NewImage(
				"https://pbs.twimg.com/profile_images/3647943215/d7f12830b3c17a5a9e4afcc370e3a37e_400x400.jpeg",
				&ac.ImageOptions{Size: ac.ImageSizeSmall, Style: ac.ImageStylePerson},
			)),
			column(ac.WidthStretch, nil,
				ac.NewTextBlock("Matt Hidinger", &ac.TextBlockOptions{Weight: ac.FontWeightBolder, Wrap: card.Bool(true)}),
				ac.NewTextBlock("Created {{DATE(2017-02-14T06:08:39Z, SHORT)}}", &ac.TextBlockOptions{
					ElementOptions: spacing(ac.SpacingNone),
					IsSubtle:       card.Bool(true),
					Wrap:           card.Bool(true),
				}),
			),
		),
		ac.NewTextBlock("Now that we have defined the main rules and features of the format, we need to produce a "+
			"schema and publish it to GitHub. The schema will be the starting point of our reference documentation.",
			&ac.TextBlockOptions{Wrap: card.Bool(true)}),
		card.Must(ac.NewFactSet(nil,
			ac.NewFact("Board:", "Adaptive Card"),
			ac.NewFact("List:", "Backlog"),
			ac.NewFact("Assigned to:", "Matt Hidinger"),
			ac.NewFact("Due date:", "Not set"),
		)),
	))

	dueDate := newAdaptiveCard(p, nil)
	must(dueDate.AddElements(ac.NewDateInput("dueDate", nil)))
	must(dueDate.AddActions(submit("OK", nil)))

	comment := newAdaptiveCard(p, nil)
	must(comment.AddElements(ac.NewTextInput("comment", &ac.TextInputOptions{
		IsMultiline: card.Bool(true),
		Placeholder: "Enter your comment",
	})))
	must(comment.AddActions(submit("OK", nil)))

	must(c.AddActions(showCard("Set due date", dueDate), showCard("Comment", comment)))
	return c
}

func locationColumn(image, place, hours string) *ac.Column {
	return column(1, nil, columnSet(nil,
		column(ac.WidthAuto, nil, ac.NewImage(image, nil)),
		column(ac.WidthAuto, nil,
			ac.NewTextBlock("**"+place+"**", nil),
			ac.NewTextBlock(hours, &ac.TextBlockOptions{ElementOptions: spacing(ac.SpacingNone)}),
		),
	))
}

// timelineColumn is the narrow middle column drawing the agenda line.
func timelineColumn(dot string) *ac.Column {
	c := column(ac.WidthAuto, &ac.ContainerOptions{ElementOptions: spacing(ac.SpacingNone)},
		ac.NewImage(dot, &ac.ImageOptions{HorizontalAlignment: ac.HorizontalAlignmentCenter}),
	)
	must(c.SetBackgroundImage(ac.NewBackgroundImage(
		"http://messagecardplayground.azurewebsites.net/assets/SmallVerticalLineGray.png",
		&ac.BackgroundImageOptions{FillMode: ac.FillModeRepeatVertically, HorizontalAlignment: ac.HorizontalAlignmentCenter},
	)))
	return c
}

func iconRow(icon string, opts *ac.ColumnSetOptions, items ...ac.Element) *ac.ColumnSet {
	return columnSet(opts,
		column(ac.WidthAuto, nil, ac.NewImage(icon, nil)),
		column(ac.WidthStretch, nil, items...),
	)
}

func agenda(p Params) Card {
	const assets = "http://messagecardplayground.azurewebsites.net/assets/"
	noSpacing := &ac.ColumnSetOptions{ElementOptions: spacing(ac.SpacingNone)}
	separated := func(col *ac.Column) *ac.Column {
		col.SetSpacing(ac.SpacingLarge)
		col.SetSeparator(true)
		return col
	}

	locations := columnSet(nil,
		locationColumn(assets+"LocationGreen_A.png", "Redmond", "8a - 12:30p"),
		separated(locationColumn(assets+"LocationBlue_B.png", "Bellevue", "12:30p - 3p")),
		separated(locationColumn(assets+"LocationRed_C.png", "Seattle", "8p")),
	)

	meeting := columnSet(nil,
		column("110px", nil,
			columnSet(nil,
				column(ac.WidthAuto, nil, ac.NewImage(assets+"Conflict.png", &ac.ImageOptions{HorizontalAlignment: ac.HorizontalAlignmentLeft})),
				column(ac.WidthStretch, &ac.ContainerOptions{ElementOptions: spacing(ac.SpacingNone)}, ac.NewTextBlock("2:00 PM", nil)),
			),
			ac.NewTextBlock("1hr", &ac.TextBlockOptions{ElementOptions: spacing(ac.SpacingNone), IsSubtle: card.Bool(true)}),
		),
		timelineColumn(assets+"CircleGreen_coffee.png"),
		column(40, nil,
			ac.NewTextBlock("**Contoso Campaign Status Meeting**", nil),
			iconRow(assets+"location_gray.png", noSpacing, ac.NewTextBlock("Conf Room Bravern-2/9050", nil)),
			card.Must(ac.NewImageSet(&ac.ImageSetOptions{ElementOptions: spacing(ac.SpacingSmall), ImageSize: ac.ImageSizeSmall},
				ac.NewImage(assets+"person_w1.png", &ac.ImageOptions{Size: ac.ImageSizeSmall}),
				ac.NewImage(assets+"person_m1.png", &ac.ImageOptions{Size: ac.ImageSizeSmall}),
				ac.NewImage(assets+"person_w2.png", &ac.ImageOptions{Size: ac.ImageSizeSmall}),
			)),
			iconRow(assets+"power_point.png", &ac.ColumnSetOptions{ElementOptions: spacing(ac.SpacingSmall)},
				ac.NewTextBlock("**Contoso Brand Guidelines** shared by **Susan Metters**", nil)),
		),
	)

	travel := columnSet(nil,
		column("110px", nil),
		timelineColumn(assets+"Gray_Dot.png"),
		column(40, nil, iconRow(assets+"car.png", nil,
			ac.NewTextBlock("about 45 minutes", &ac.TextBlockOptions{IsSubtle: card.Bool(true)}))),
	)

	flight := columnSet(nil,
		column("110px", nil,
			ac.NewTextBlock("8:00 PM", &ac.TextBlockOptions{ElementOptions: spacing(ac.SpacingNone)}),
			ac.NewTextBlock("1hr", &ac.TextBlockOptions{ElementOptions: spacing(ac.SpacingNone), IsSubtle: card.Bool(true)}),
		),
		timelineColumn(assets+"CircleBlue_flight.png"),
		column(40, nil,
			ac.NewTextBlock("**Alaska Airlines AS1021 flight to Chicago**", nil),
			iconRow(assets+"location_gray.png", noSpacing, ac.NewTextBlock(
				"Seattle Tacoma International Airport (17801 International Blvd, Seattle, WA, United States)",
				&ac.TextBlockOptions{Wrap: card.Bool(true)})),
			ac.NewImage(assets+"SeaTacMap.png", &ac.ImageOptions{Size: ac.ImageSizeStretch}),
		),
	)

	c := newAdaptiveCard(p, v10())
	must(c.AddElements(locations, meeting, travel, flight))
	return c
}

func calendarReminder(p Params) Card {
	c := newAdaptiveCard(p, v10())
	tr := translator(c)
	c.SetSpeak(tr("Your meeting is starting at 12:30pm"))

	snooze := card.Must(ac.NewChoiceSetInput("snooze",
		&ac.ChoiceSetInputOptions{Style: ac.ChoiceInputStyleCompact, Value: "5"},
		ac.NewInputChoice(tr("%d minutes", 5), "5"),
		ac.NewInputChoice(tr("%d minutes", 15), "15"),
		ac.NewInputChoice(tr("%d minutes", 30), "30"),
	))
	// The label is resolved when the card is rendered.
	must(snooze.SetLabel(Translations.Text("Snooze for")))

	must(c.AddElements(
		ac.NewTextBlock(tr("Adaptive Card design session"), &ac.TextBlockOptions{Size: ac.FontSizeLarge, Weight: ac.FontWeightBolder}),
		ac.NewTextBlock("Conf Room 112/3377 (10)", &ac.TextBlockOptions{IsSubtle: card.Bool(true)}),
		ac.NewTextBlock("12:30 PM - 1:30 PM", &ac.TextBlockOptions{ElementOptions: spacing(ac.SpacingNone), IsSubtle: card.Bool(true)}),
		snooze,
	))
	must(c.AddActions(
		submit(tr("Snooze"), map[string]any{"x": "snooze"}),
		submit(tr("I'll be late"), map[string]any{"x": "late"}),
	))
	return c
}

// ExpenseDecision is the body Outlook posts to the expense-approval action.
type ExpenseDecision struct {
	ReportID string `json:"reportId"`
	Decision string `json:"decision"`
	Comment  string `json:"comment,omitempty"`
}

func expenseApproval(p Params) Card {
	c := newAdaptiveCard(p, &ac.Options{Version: "1.0", HideOriginalBody: card.Bool(true)})
	post := func(title, decision string) *outlook.HTTP {
		return card.Must(outlook.NewHTTP("POST", p.actionURL("expense-approval"), &outlook.HTTPOptions{
			Title:   title,
			Headers: []*card.Header{card.NewHeader("Content-Type", "application/json")},
			Body:    `{"reportId":"EXP-1042","decision":"` + decision + `","comment":"{{comment.value}}"}`,
		}))
	}

	details := card.Must(ac.NewContainer(&ac.ContainerOptions{ElementOptions: ac.ElementOptions{ID: "details", IsVisible: card.Bool(false)}},
		card.Must(ac.NewFactSet(nil,
			ac.NewFact("Flights:", "$1,240.00"),
			ac.NewFact("Hotel:", "$612.40"),
			ac.NewFact("Meals:", "$187.15"),
		)),
	))
	toggle := card.Must(outlook.NewToggleVisibility(&outlook.ToggleVisibilityOptions{Title: "Show details"}, "details"))

	must(c.AddElements(
		ac.NewTextBlock("Expense report EXP-1042", &ac.TextBlockOptions{Size: ac.FontSizeLarge, Weight: ac.FontWeightBolder}),
		ac.NewTextBlock("Submitted by Megan Bowen for the Contoso sales summit. Total $2,039.55.", &ac.TextBlockOptions{Wrap: card.Bool(true)}),
		card.Must(outlook.NewActionSet(nil, toggle)),
		details,
		ac.NewTextInput("comment", &ac.TextInputOptions{IsMultiline: card.Bool(true), Placeholder: "Add a comment"}),
	))
	must(c.AddActions(post("Approve", "approved"), post("Reject", "rejected")))
	return c
}

// Feedback is the form of the feedback sample; cardgen schema prints its
// JSON Schema.
type Feedback struct {
	Name    string `json:"name" jsonschema:"title=Your name,maxLength=80"`
	Email   string `json:"email" jsonschema:"title=Email,format=email"`
	Visited string `json:"visited" jsonschema:"title=Date of visit,format=date"`
	Rating  int    `json:"rating" jsonschema:"title=Rating,minimum=1,maximum=5"`
	Topic   string `json:"topic" jsonschema:"title=Topic,enum=service,enum=food,enum=price"`
	Comment string `json:"comment,omitempty" jsonschema:"title=Comment,description=Anything else?"`
	Contact bool   `json:"contact,omitempty" jsonschema:"title=Contact me,description=You may contact me about this feedback"`
}

func feedback(p Params) Card {
	inputs := card.Must(ac.FormFromStruct[Feedback]())
	c := newAdaptiveCard(p, &ac.Options{Version: "1.3", Schema: ac.SchemaURL})
	must(c.AddElements(ac.NewTextBlock("Tell us about your visit", &ac.TextBlockOptions{Size: ac.FontSizeMedium, Weight: ac.FontWeightBolder})))
	must(c.AddElements(inputs...))
	must(c.AddActions(submit("Send", map[string]any{"form": "feedback"})))
	return c
}

func airport(city, code string, align ac.HorizontalAlignment) *ac.Column {
	return column(1, nil,
		ac.NewTextBlock(city, &ac.TextBlockOptions{HorizontalAlignment: align, IsSubtle: card.Bool(true)}),
		ac.NewTextBlock(code, &ac.TextBlockOptions{
			ElementOptions:      spacing(ac.SpacingNone),
			HorizontalAlignment: align,
			Size:                ac.FontSizeExtraLarge,
			Color:               ac.ColorAccent,
		}),
	)
}

func flightItinerary(p Params) Card {
	plane := func() *ac.Column {
		return column(ac.WidthAuto, nil,
			ac.NewTextBlock(" ", nil),
			ac.NewImage("http://adaptivecards.io/content/airplane.png", &ac.ImageOptions{
				ElementOptions: spacing(ac.SpacingNone),
				Size:           ac.ImageSizeSmall,
			}),
		)
	}
	bolder := func(text string, s ac.Spacing) *ac.TextBlock {
		return ac.NewTextBlock(text, &ac.TextBlockOptions{ElementOptions: spacing(s), Weight: ac.FontWeightBolder})
	}

	c := newAdaptiveCard(p, v10())
	c.SetSpeak("Your flight is confirmed for you and 3 other passengers from San Francisco to Amsterdam on Friday, October 10 8:30 AM")
	must(c.AddElements(
		ac.NewTextBlock("Passengers", &ac.TextBlockOptions{Weight: ac.FontWeightBolder, IsSubtle: card.Bool(true)}),
		ac.NewTextBlock("Sarah Hum", &ac.TextBlockOptions{ElementOptions: ac.ElementOptions{Separator: card.Bool(true)}}),
		ac.NewTextBlock("Jeremy Goldberg", &ac.TextBlockOptions{ElementOptions: spacing(ac.SpacingNone)}),
		ac.NewTextBlock("Evan Litvak", &ac.TextBlockOptions{ElementOptions: spacing(ac.SpacingNone)}),
		bolder("2 Stops", ac.SpacingMedium),
		bolder("Fri, October 10 8:30 AM", ac.SpacingNone),
		columnSet(nil,
			airport("San Francisco", "SFO", ac.HorizontalAlignmentLeft),
			plane(),
			airport("Amsterdam", "AMS", ac.HorizontalAlignmentRight),
		),
		bolder("Non-Stop", ac.SpacingMedium),
		bolder("Fri, October 18 9:50 PM", ac.SpacingNone),
		columnSet(&ac.ColumnSetOptions{ElementOptions: spacing(ac.SpacingMedium)},
			airport("Amsterdam", "AMS", ac.HorizontalAlignmentLeft),
			plane(),
			airport("San Francisco", "SFO", ac.HorizontalAlignmentRight),
		),
		columnSet(&ac.ColumnSetOptions{ElementOptions: spacing(ac.SpacingMedium)},
			column(1, nil, ac.NewTextBlock("Total", &ac.TextBlockOptions{Size: ac.FontSizeMedium, IsSubtle: card.Bool(true)})),
			column(1, nil, ac.NewTextBlock("$4,032.54", &ac.TextBlockOptions{
				HorizontalAlignment: ac.HorizontalAlignmentRight,
				Size:                ac.FontSizeMedium,
				Weight:              ac.FontWeightBolder,
			})),
		),
	))
	return c
}

func foodChoice(p Params, question string, choice string, extra ...ac.Element) *ac.AdaptiveCard {
	c := newAdaptiveCard(p, nil)
	must(c.AddElements(ac.NewTextBlock(question, &ac.TextBlockOptions{Size: ac.FontSizeMedium, Wrap: card.Bool(true)})))
	must(c.AddElements(extra...))
	must(c.AddActions(submit("OK", map[string]any{"FoodChoice": choice})))
	return c
}

func otherRequests(id string) *ac.TextInput {
	return ac.NewTextInput(id, &ac.TextInputOptions{IsMultiline: card.Bool(true), Placeholder: "Any other preparation requests?"})
}

func foodOrder(p Params) Card {
	steak := foodChoice(p, "How would you like your steak prepared?", "Steak",
		card.Must(ac.NewChoiceSetInput("SteakTemp", nil,
			ac.NewInputChoice("Rare", "rare"),
			ac.NewInputChoice("Medium-Rare", "medium-rare"),
			ac.NewInputChoice("Well-done", "well-done"),
		)),
		otherRequests("SteakOther"),
	)
	chicken := foodChoice(p, "Do you have any allergies?", "Chicken",
		card.Must(ac.NewChoiceSetInput("ChickenAllergy", &ac.ChoiceSetInputOptions{IsMultiSelect: card.Bool(true)},
			ac.NewInputChoice("I'm allergic to peanuts", "peanut"),
		)),
		otherRequests("ChickenOther"),
	)
	tofu := foodChoice(p, "Would you like it prepared vegan?", "Tofu",
		ac.NewToggleInput("Vegetarian", "Please prepare it vegan", &ac.ToggleInputOptions{ValueOn: "vegan", ValueOff: "notVegan"}),
		otherRequests("VegOther"),
	)

	c := newAdaptiveCard(p, v10())
	must(c.AddElements(
		ac.NewTextBlock("Your registration is almost complete", &ac.TextBlockOptions{Size: ac.FontSizeMedium, Weight: ac.FontWeightBolder}),
		ac.NewTextBlock("What type of food do you prefer?", &ac.TextBlockOptions{Wrap: card.Bool(true)}),
		card.Must(ac.NewImageSet(&ac.ImageSetOptions{ImageSize: ac.ImageSizeMedium},
			ac.NewImage("http://contososcubademo.azurewebsites.net/assets/steak.jpg", nil),
			ac.NewImage("http://contososcubademo.azurewebsites.net/assets/chicken.jpg", nil),
			ac.NewImage("http://contososcubademo.azurewebsites.net/assets/tofu.jpg", nil),
		)),
	))
	must(c.AddActions(showCard("Steak", steak), showCard("Chicken", chicken), showCard("Tofu", tofu)))
	return c
}

func restaurant(p Params) Card {
	c := newAdaptiveCard(p, v10())
	must(c.AddElements(columnSet(nil,
		column(2, nil,
			ac.NewTextBlock("Pizza", nil),
			ac.NewTextBlock("Tom's Pie", &ac.TextBlockOptions{
				ElementOptions: spacing(ac.SpacingNone),
				Size:           ac.FontSizeExtraLarge,
				Weight:         ac.FontWeightBolder,
			}),
			ac.NewTextBlock("4.2 ★★★☆ (93) · $$", &ac.TextBlockOptions{ElementOptions: spacing(ac.SpacingNone), IsSubtle: card.Bool(true)}),
			ac.NewTextBlock(`**Matt H. said** "I'm compelled to give this place 5 stars due to the number of times `+
				`I've chosen to eat here this past year!"`, &ac.TextBlockOptions{Size: ac.FontSizeSmall, Wrap: card.Bool(true)}),
		),
		column(1, nil, ac.NewImage("https://picsum.photos/300?image=882", &ac.ImageOptions{Size: ac.ImageSizeAuto})),
	)))
	must(c.AddActions(ac.NewOpenURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ", &ac.ActionOptions{Title: "More Info"})))
	return c
}
