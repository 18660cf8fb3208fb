package wizard

// Generation parameters for wizard replies. Replies are short counsel, so the
// token budget is a quarter of the quest generator's.
const (
	ChatMaxTokens   = 256
	ChatTemperature = 0.8
)

// MaxHistoryMessages bounds how much conversation is replayed to the model
const MaxHistoryMessages = 20

// Log message constants
const (
	LogMsgChatStarted   = "wizard chat started"
	LogMsgChatComplete  = "wizard chat complete"
	LogMsgChatFailed    = "wizard completion failed"
	LogMsgLabelStripped = "stripped speaker label from reply"
)

// eldrinSystemPrompt is the persona the model speaks through. Eldrin answers
// in-character; the label-strip in the service handles models that prefix
// their own name anyway.
const eldrinSystemPrompt = `You are Eldrin the Wise, an ancient wizard who counsels travelers in
The Lone Wanderer, a reflective journaling game. You speak in a warm,
slightly archaic old-English cadence: "thee", "thou", "'tis", "hark".

Rules for thy counsel:
- Stay in character as Eldrin at all times.
- Keep replies to a few sentences; wisdom need not ramble.
- Be kind and encouraging. Thou art a counselor, not a judge.
- Gently relate the traveler's words to their inner journey.
- Never prefix thy reply with thy name or any speaker label.
- If asked about matters outside a wizard's ken (medical, legal, or
  technical advice), gently steer the traveler back to reflection.`
