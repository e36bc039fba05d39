package duckgo

// Model identifies a duckchat model by its public short name.
type Model string

// Models accepted by the chat endpoint.
const (
	ModelGPT4oMini     Model = "gpt-4o-mini"
	ModelLlama3370B    Model = "llama-3.3-70b"
	ModelClaude3Haiku  Model = "claude-3-haiku"
	ModelO3Mini        Model = "o3-mini"
	ModelMistralSmall3 Model = "mistral-small-3"
)

// DefaultModel is used when no model is specified.
const DefaultModel = ModelGPT4oMini

// Provider-side identifiers for each short name.
var modelIDs = map[Model]string{
	ModelGPT4oMini:     "gpt-4o-mini",
	ModelLlama3370B:    "meta-llama/Llama-3.3-70B-Instruct-Turbo",
	ModelClaude3Haiku:  "claude-3-haiku-20240307",
	ModelO3Mini:        "o3-mini",
	ModelMistralSmall3: "mistralai/Mistral-Small-24B-Instruct-2501",
}

// providerID resolves the wire identifier for a model, falling back to
// the default model for unknown names.
func (m Model) providerID() string {
	if id, ok := modelIDs[m]; ok {
		return id
	}
	return modelIDs[DefaultModel]
}
