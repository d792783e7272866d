package tools

// Content is one rendered block of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the uniform envelope every transport surface returns. Data
// carries the structured payload next to the rendered text; structured
// fields are the compatibility contract, the text is not.
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
	Data    any       `json:"data,omitempty"`
}

func TextResult(text string, data any) Result {
	return Result{
		Content: []Content{{Type: "text", Text: text}},
		Data:    data,
	}
}

func ErrorResult(msg string) Result {
	return Result{
		Content: []Content{{Type: "text", Text: msg}},
		IsError: true,
	}
}
