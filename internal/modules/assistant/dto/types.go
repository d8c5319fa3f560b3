package dto

type TurnInput struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompleteInput struct {
	Persona string      `json:"persona"`
	Turns   []TurnInput `json:"turns"`
}

type CompleteOutput struct {
	Text string `json:"text"`
}

type TranscribeInput struct {
	Audio    []byte
	Filename string
}

type TranscribeOutput struct {
	Text string `json:"text"`
}
