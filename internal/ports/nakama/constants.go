package nakama

const (
	// RpcValidatePlay checks a lead or follow against the rules.
	RpcValidatePlay = "tractor_validate_play"
	// RpcSuggestMove asks the bot for a play.
	RpcSuggestMove = "tractor_suggest_move"
	// RpcClassify classifies a set of cards.
	RpcClassify = "tractor_classify"
)

// Runtime env keys read at init.
const (
	EnvConfigPath = "tractor_config_path"
	EnvBotLevel   = "tractor_bot_level"
)

// gRPC status codes returned through runtime.NewError.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
