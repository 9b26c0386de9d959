package application

// Messages holds every chat line the bot sends to counterparties.
type Messages struct {
	GiveInstructions []string
	TakeInstructions []string

	TradeComplete string
	WrongLink     string
	BadLink       string
	ItemNotFound  string
	CantAdd       string
	ItemAdded     string

	Welcome []string

	Paused   string
	NotReady string

	UnrecognizedCommand string
}

func DefaultMessages(links InventoryLinks) Messages {
	return Messages{
		GiveInstructions: []string{
			"If you want to give me something, offer it for trade, check ready, and I'll check ready soon after.",
			"Click Make Trade when you're sure you want to send me your items.",
		},
		TakeInstructions: []string{
			"If you want me to send you something from my inventory, go to my inventory:",
			links.PageURL() + " ,",
			`then right click on what you want and select "Copy Link Address", then paste that into this trade`,
			"chat window and I'll add the item. Check ready then click Make Trade when you're ready.",
		},
		TradeComplete: "Trade complete! Please remember to remove me from your friends list if you don't want to make any more trades so that other " +
			"people can trade with me. If you want to make trades later you can always re-add me.",
		WrongLink:    `It looks like you selected "Copy Page URL", you need to select "Copy Link Address"`,
		BadLink:      "I don't recognise that link.",
		ItemNotFound: "I can't find that item, you may need to refresh my inventory page or try to copy the link again.",
		CantAdd:      "Sorry, I can't add that item, it might not be tradable.",
		ItemAdded:    "Item added, click ready when you want to make the trade",
		Welcome: []string{
			"Hello! To give me your trash or get something from my inventory, send me a trade offer or invite me to trade and I'll give you instructions there. " +
				"Please remember to remove me from your friends list after you are done so that my friends list doesn't fill up. " +
				"If you want to make trades later you can always re-add me.",
			"Beware of people using this bot for scams, it will take anything from anyone and give anything to anyone, don't believe anyone who says otherwise!",
		},
		Paused:              "Sorry, I can't trade right now. I'll set my status as Looking to Trade when I'm ready to accept requests again.",
		NotReady:            "Sorry, I can't accept a trade request right now, wait a few minutes and try again.",
		UnrecognizedCommand: "Unrecognized command",
	}
}

// Instructions returns the full opening sequence: give instructions first, then take instructions.
func (m Messages) Instructions() []string {
	out := make([]string, 0, len(m.GiveInstructions)+len(m.TakeInstructions))
	out = append(out, m.GiveInstructions...)
	return append(out, m.TakeInstructions...)
}
