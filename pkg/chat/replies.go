package chat

import "strings"

// Replies holds every fixed message the bot can print.
// Placeholders: {user} is the user's name, {answer} a recalled answer, {skip} the skip token.
type Replies struct {
	Greeting       string `mapstructure:"greeting"`
	Farewell       string `mapstructure:"farewell"`
	Preferences    string `mapstructure:"preferences"`
	GoodMood       string `mapstructure:"good_mood"`
	SomethingWrong string `mapstructure:"something_wrong"`
	NotUnderstood  string `mapstructure:"not_understood"`
	Remembered     string `mapstructure:"remembered"`
	Unknown        string `mapstructure:"unknown"`
	Learned        string `mapstructure:"learned"`
	LearnPrompt    string `mapstructure:"learn_prompt"`
	TeachPrompt    string `mapstructure:"teach_prompt"`
}

// DefaultReplies returns the stock French replies.
func DefaultReplies() Replies {
	return Replies{
		Greeting:       "Bonjour! Comment puis-je t'aider aujourd'hui?",
		Farewell:       "Au revoir! Reviens bientôt.",
		Preferences:    "Mes préférences ? Je suis passionné par la musique, surtout le metal. Et toi?",
		GoodMood:       "Tu sembles de bonne humeur !",
		SomethingWrong: "Est-ce que quelque chose ne va pas ?",
		NotUnderstood:  "Je ne comprends pas bien. Peux-tu reformuler?",
		Remembered:     "Je me souviens, la réponse est {answer}",
		Unknown:        "Je ne connais pas la réponse. Peux-tu m'apprendre ?",
		Learned:        "Merci, {user}! J'ai appris une nouvelle réponse!",
		LearnPrompt:    `Tape la réponse ou "{skip}" pour passer: `,
		TeachPrompt:    "Nouvelle réponse : ",
	}
}

// withDefaults fills empty fields from DefaultReplies.
func (r Replies) withDefaults() Replies {
	d := DefaultReplies()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&r.Greeting, d.Greeting)
	fill(&r.Farewell, d.Farewell)
	fill(&r.Preferences, d.Preferences)
	fill(&r.GoodMood, d.GoodMood)
	fill(&r.SomethingWrong, d.SomethingWrong)
	fill(&r.NotUnderstood, d.NotUnderstood)
	fill(&r.Remembered, d.Remembered)
	fill(&r.Unknown, d.Unknown)
	fill(&r.Learned, d.Learned)
	fill(&r.LearnPrompt, d.LearnPrompt)
	fill(&r.TeachPrompt, d.TeachPrompt)
	return r
}

func expand(template string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(template)
}
