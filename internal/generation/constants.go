package generation

// Generation parameters sent with every quest completion request
const (
	QuestMaxTokens   = 1024
	QuestTemperature = 0.7
)

// MaxEntryLength bounds journal entry text before any model call is made
const MaxEntryLength = 5000

// Log message constants
const (
	LogMsgGenerationStarted  = "quest generation started"
	LogMsgGenerationComplete = "quest generation complete"
	LogMsgUpstreamFailed     = "completion request failed"
	LogMsgExtractFailed      = "no JSON object in model output"
	LogMsgParseFailed        = "model output failed to parse"
	LogMsgSchemaFailed       = "model output failed schema validation"
)

// Failure stage labels recorded on the generation failure counter
const (
	StageUpstream = "upstream"
	StageExtract  = "extract"
	StageParse    = "parse"
	StageSchema   = "schema"
)
