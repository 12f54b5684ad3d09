package bot

// FallbackRounds is the bot's own question bank, used when the backend is
// unreachable or returns bad data.
var FallbackRounds = []Round{
	{
		Statements: []string{
			"'bertyX' is a real open source project.",
			"'hubbleprotocol' is a real open source project.",
			"'heineiuo' is a real open source project.",
		},
		AnswerIndex: 0,
	},
	{
		Statements: []string{
			"'0xb7b2e53a325bf3cc1e42d2b24e485f2e699fbb390c656ba9ffe3d8162a875561' is a real open source project.",
			"'0xb7b2e53a325bf3cc1e42d2b24e485f2e699fbb390c656ba9ffe3d8162a875561X' is a real open source project.",
			"'0x69526c6276b49a35d788e6c13d16b3bab6d1501908926364176ffa4400479cb4' is a real open source project.",
		},
		AnswerIndex: 1,
	},
}
