package bot_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/krugerlabs/kruger-trivia/internal/bot"
)

func TestQuestionClientFetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"statements":["'a' is real.","'b' is real.","'c' is real."],"answer_index":1}`))
		}))
		defer server.Close()

		client := bot.NewQuestionClient(server.URL, bot.DefaultBackendTimeout)
		round, err := client.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if len(round.Statements) != 3 || round.AnswerIndex != 1 {
			t.Errorf("unexpected round: %+v", round)
		}
	})

	t.Run("NonOKStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := bot.NewQuestionClient(server.URL, bot.DefaultBackendTimeout)
		if _, err := client.Fetch(context.Background()); err == nil {
			t.Error("Fetch should fail on a non-200 status")
		}
	})

	t.Run("ErrorPayload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"error":"not enough data to generate question"}`))
		}))
		defer server.Close()

		client := bot.NewQuestionClient(server.URL, bot.DefaultBackendTimeout)
		if _, err := client.Fetch(context.Background()); err == nil {
			t.Error("Fetch should fail on an error payload")
		}
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		for name, body := range map[string]string{
			"noStatements":    `{"answer_index":0}`,
			"noAnswerIndex":   `{"statements":["a","b","c"]}`,
			"indexOutOfRange": `{"statements":["a","b","c"],"answer_index":5}`,
			"notJSON":         `<html>garbage</html>`,
		} {
			t.Run(name, func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.Write([]byte(body))
				}))
				defer server.Close()

				client := bot.NewQuestionClient(server.URL, bot.DefaultBackendTimeout)
				if _, err := client.Fetch(context.Background()); err == nil {
					t.Errorf("Fetch should fail on payload %s", body)
				}
			})
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := bot.NewQuestionClient(server.URL, 50*time.Millisecond)
		if _, err := client.Fetch(context.Background()); err == nil {
			t.Error("Fetch should fail when the backend exceeds the timeout")
		}
	})
}
