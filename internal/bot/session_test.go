package bot_test

import (
	"testing"

	"github.com/krugerlabs/kruger-trivia/internal/bot"
)

func TestSessionStore(t *testing.T) {
	store := bot.NewSessionStore()
	round := &bot.Round{Statements: []string{"a", "b", "c"}, AnswerIndex: 0}

	t.Run("GetMissing", func(t *testing.T) {
		if _, ok := store.Get(1); ok {
			t.Error("Get on an empty store should miss")
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		store.Put(bot.NewSession(1, round))

		sess, ok := store.Get(1)
		if !ok {
			t.Fatal("session not found after Put")
		}
		if sess.UserID != 1 || sess.Current != round || sess.Score != 0 || sess.Streak != 0 {
			t.Errorf("unexpected session: %+v", sess)
		}
		if sess.ID == "" {
			t.Error("session ID should be set")
		}
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		first, _ := store.Get(1)
		first.Score = 5

		store.Put(bot.NewSession(1, round))
		sess, _ := store.Get(1)
		if sess.Score != 0 {
			t.Errorf("replayed session kept old score %d", sess.Score)
		}
		if sess.ID == first.ID {
			t.Error("replacement session should have a fresh ID")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store.Delete(1)
		if _, ok := store.Get(1); ok {
			t.Error("session survived Delete")
		}
	})
}
