package messages

const (
	prefixKey     = "gohelp"
	HelpPrefixKey = prefixKey + ".help"
)

// Help section headings
const (
	HelpUsageKey             = HelpPrefixKey + ".usage"
	HelpArgumentsKey         = HelpPrefixKey + ".arguments"
	HelpOptionsKey           = HelpPrefixKey + ".options"
	HelpSubCommandsKey       = HelpPrefixKey + ".sub_commands"
	HelpExamplesKey          = HelpPrefixKey + ".examples"
	HelpAvailableCommandsKey = HelpPrefixKey + ".available_commands"
	HelpCommandUsageKey      = HelpPrefixKey + ".command_usage"
)
