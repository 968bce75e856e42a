package ai

import "encoding/json"

// Message is a provider-agnostic chat message handed to the completion client.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// BuildPlanMessages assembles the planner conversation: the plan-generation
// system prompt (behavioral constraints plus the closed food vocabulary) with
// the strict JSON schema suffix, followed by the serialized profile and
// diagnosis context as the user turn.
func BuildPlanMessages(context interface{}) ([]Message, error) {
	ctxJSON, err := json.Marshal(context)
	if err != nil {
		return nil, err
	}

	return []Message{
		{Role: RoleSystem, Content: SystemPromptPlanGeneration + PlanSchemaSuffix},
		{Role: RoleUser, Content: string(ctxJSON)},
	}, nil
}

// BuildChatMessages assembles the assistant conversation: the domain-scoping
// system prompt with formatting rules, a second system message carrying the
// user's serialized context, then the conversation history.
func BuildChatMessages(context interface{}, history []Message) ([]Message, error) {
	ctxJSON := []byte("{}")
	if context != nil {
		var err error
		ctxJSON, err = json.Marshal(context)
		if err != nil {
			return nil, err
		}
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages,
		Message{Role: RoleSystem, Content: SystemPromptDiabetesAyurveda + ChatFormattingSuffix},
		Message{Role: RoleSystem, Content: string(ctxJSON)},
	)
	messages = append(messages, history...)
	return messages, nil
}
