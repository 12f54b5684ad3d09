package bot

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/krugerlabs/kruger-trivia/internal/config"
)

const welcomeMessage = `Welcome to Kruger Bot!

Game Rules:
You'll be presented with three statements: two are true, one is a twist (a false or misleading fact). Your goal is to spot the twist! Score points for correct answers and build your streak for bonus multipliers.
Type /play to start.`

const fallbackNotice = "Backend is unavailable or returned bad data. Using a fallback question."

// Reply is one outbound chat message. OptionCount > 0 asks the transport to
// show a one-time numeric keyboard; RemoveKeyboard clears it.
type Reply struct {
	Text           string
	OptionCount    int
	RemoveKeyboard bool
}

// Controller drives the per-user game loop: fetch a question, collect a
// numeric answer, score it, repeat. It owns no transport; handlers return
// replies for the caller to deliver.
type Controller struct {
	sessions *SessionStore
	client   QuestionClient
	rand     *rand.Rand
}

func NewController(client QuestionClient, sessions *SessionStore, r *rand.Rand) *Controller {
	return &Controller{
		sessions: sessions,
		client:   client,
		rand:     r,
	}
}

func (c *Controller) Start(userID int64) []Reply {
	return []Reply{{Text: welcomeMessage}}
}

// Play begins a fresh game for the user, replacing any session in progress.
func (c *Controller) Play(ctx context.Context, userID int64) []Reply {
	var replies []Reply

	round, err := c.client.Fetch(ctx)
	if err != nil {
		config.Logger().WithField("user_id", userID).WithError(err).Warn("Falling back to local question")
		round = c.fallbackRound()
		replies = append(replies, Reply{Text: fallbackNotice})
	}

	c.sessions.Put(NewSession(userID, round))
	return append(replies, presentRound(round))
}

// Answer scores a numeric reply against the current round and presents the
// next one. Non-numeric input re-prompts without touching the session.
func (c *Controller) Answer(ctx context.Context, userID int64, text string) []Reply {
	sess, ok := c.sessions.Get(userID)
	if !ok {
		return []Reply{{Text: "Please start a new game with /play.", RemoveKeyboard: true}}
	}

	idx, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return []Reply{{Text: "Please reply with the number of your answer."}}
	}

	var msg strings.Builder
	if idx-1 == sess.Current.AnswerIndex {
		sess.Score++
		sess.Streak++
		msg.WriteString("Correct!\n")
	} else {
		sess.Streak = 0
		fmt.Fprintf(&msg, "Twist! The correct answer was option %d.\n", sess.Current.AnswerIndex+1)
	}
	fmt.Fprintf(&msg, "Score: %d\nStreak: %d\n", sess.Score, sess.Streak)

	next, err := c.client.Fetch(ctx)
	if err != nil {
		config.Logger().WithField("user_id", userID).WithError(err).Warn("Backend lost mid-game, ending session")
		c.sessions.Delete(userID)
		return []Reply{{Text: msg.String() + "\n" + fallbackNotice, RemoveKeyboard: true}}
	}

	sess.Current = next
	return []Reply{{Text: msg.String()}, presentRound(next)}
}

// Cancel ends the game. Cancelling without a session is not an error.
func (c *Controller) Cancel(userID int64) []Reply {
	c.sessions.Delete(userID)
	return []Reply{{Text: "Game cancelled.", RemoveKeyboard: true}}
}

func (c *Controller) fallbackRound() *Round {
	round := FallbackRounds[c.rand.Intn(len(FallbackRounds))]
	return &round
}

func presentRound(round *Round) Reply {
	var b strings.Builder
	b.WriteString("Spot the twist!\n\n")
	for i, statement := range round.Statements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, statement)
	}
	return Reply{Text: b.String(), OptionCount: len(round.Statements)}
}
