package trivia

const defaultOutro = "Reply with the number you think is the twist!"

// FallbackQuestions is served when live synthesis is impossible. Every entry
// satisfies the Question contract.
var FallbackQuestions = []Question{
	{
		Intro: "🌟 Ready for a challenge? Here are three project names. One of them is a clever fake! Can you spot the twist?",
		Statements: []string{
			"'OpenAI GPT' is a real open source project.",
			"'TensorFlow' is a real open source project.",
			"'QuantumBanana' is a real open source project.",
		},
		AnswerIndex: 2,
		Options:     []string{"OpenAI GPT", "TensorFlow", "QuantumBanana"},
		Twist:       "QuantumBanana",
		Outro:       defaultOutro,
	},
	{
		Intro: "🧩 Which of these is NOT a real open source artifact? Find the twist!",
		Statements: []string{
			"'NumPy' is a real open source artifact.",
			"'PyTorch' is a real open source artifact.",
			"'BananaTorch' is a real open source artifact.",
		},
		AnswerIndex: 2,
		Options:     []string{"NumPy", "PyTorch", "BananaTorch"},
		Twist:       "BananaTorch",
		Outro:       defaultOutro,
	},
}

// jokeMetrics supplies the fabricated option for metric questions.
var jokeMetrics = []string{
	"vibes_per_commit",
	"meme_velocity",
	"rubber_duck_count",
	"coffee_to_code_ratio",
}
