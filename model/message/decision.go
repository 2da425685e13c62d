package message

type Decision struct {
	Reply bool
	Text  string
}

func DecisionReply(txt string) Decision {
	return Decision{
		Reply: true,
		Text:  txt,
	}
}
