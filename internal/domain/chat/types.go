package chat

import "time"

// Step tags the current node of the scripted dialogue tree.
type Step string

const (
	StepGreeting    Step = "greeting"
	StepLocation    Step = "location"
	StepEnvironment Step = "environment"
	StepExperience  Step = "experience"
	StepPets        Step = "pets"
	StepBudget      Step = "budget"
	StepStyle       Step = "style"
	StepConfirm     Step = "confirm"
	StepResults     Step = "results"
)

type Sender string

const (
	SenderSystem Sender = "system"
	SenderUser   Sender = "user"
)

// Option is a quick reply: display label plus the machine value the client
// echoes back.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Message struct {
	ID      string    `json:"id"`
	Sender  Sender    `json:"sender"`
	Text    string    `json:"text"`
	Options []Option  `json:"options,omitempty"`
	SentAt  time.Time `json:"sent_at"`
	// TypingMillis hints how long the client should show the typing
	// indicator before revealing the message. Purely visual.
	TypingMillis int `json:"typing_millis,omitempty"`
}

// Outcome is the result of feeding one user input to the dialogue.
type Outcome struct {
	Replies []Message
	// Done is set when the flow hands off to suggestion generation; the
	// session then owns the fully defaulted preferences.
	Done bool
	// Restarted is set when the visitor asked to redo the conversation.
	Restarted bool
	// NeedsLocation asks the caller to resolve the device location and feed
	// the city back via ProvideCity / ProvideCityFailed.
	NeedsLocation bool
}
