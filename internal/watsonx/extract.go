package watsonx

import (
	"encoding/json"
	"fmt"
)

// ExtractReply pulls the reply text out of a raw chat inference response.
//
// The response shape is not guaranteed, so three tiers are tried in order:
// a typed choices/message/content decode, a generic map walk over the same
// path, and finally the whole raw body rendered as a string. No tier ever
// reports an error; each one falls through to the next.
func ExtractReply(raw []byte) string {
	var typed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &typed); err == nil && len(typed.Choices) > 0 {
		if content := typed.Choices[0].Message.Content; content != "" {
			return content
		}
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err == nil {
		if content, ok := replyFromMap(generic); ok {
			return content
		}
	}

	return string(raw)
}

// replyFromMap walks choices[0].message.content through type assertions,
// covering responses where content is not a plain string.
func replyFromMap(resp map[string]interface{}) (string, bool) {
	choices, ok := resp["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	msg, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", false
	}
	content, exists := msg["content"]
	if !exists || content == nil {
		return "", false
	}
	if s, ok := content.(string); ok {
		return s, true
	}
	return fmt.Sprint(content), true
}
