package handler

import (
	"context"
	"errors"

	"moviebot/internal/repository/memory"
	"moviebot/internal/service"
	"moviebot/internal/testutil"

	tele "gopkg.in/telebot.v3"
)

// outgoing is a message captured by the fakes
type outgoing struct {
	to   tele.Recipient
	what interface{}
	opts []interface{}
	kind string // send, reply, edit, edit_caption
}

func (o outgoing) text() string {
	switch v := o.what.(type) {
	case string:
		return v
	case *tele.Photo:
		return v.Caption
	}
	return ""
}

func (o outgoing) markup() *tele.ReplyMarkup {
	for _, opt := range o.opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			return m
		}
	}
	return nil
}

// fakeContext implements the parts of tele.Context the handler uses.
// Calling anything else panics on the nil embedded interface.
type fakeContext struct {
	tele.Context

	sender   *tele.User
	chat     *tele.Chat
	message  *tele.Message
	callback *tele.Callback
	text     string

	sendErr  error
	replyErr error
	editErr  error

	responded int
	out       []outgoing
}

func (c *fakeContext) Sender() *tele.User { return c.sender }
func (c *fakeContext) Chat() *tele.Chat { return c.chat }
func (c *fakeContext) Message() *tele.Message { return c.message }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }
func (c *fakeContext) Text() string { return c.text }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.out = append(c.out, outgoing{to: c.chat, what: what, opts: opts, kind: "send"})
	return c.sendErr
}

func (c *fakeContext) Reply(what interface{}, opts ...interface{}) error {
	c.out = append(c.out, outgoing{to: c.chat, what: what, opts: opts, kind: "reply"})
	if _, isPhoto := what.(*tele.Photo); isPhoto {
		return c.replyErr
	}
	return nil
}

func (c *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	c.out = append(c.out, outgoing{to: c.chat, what: what, opts: opts, kind: "edit"})
	return c.editErr
}

func (c *fakeContext) EditCaption(caption string, opts ...interface{}) error {
	c.out = append(c.out, outgoing{to: c.chat, what: caption, opts: opts, kind: "edit_caption"})
	return c.editErr
}

func (c *fakeContext) Respond(_ ...*tele.CallbackResponse) error {
	c.responded++
	return nil
}

// fakeSender captures messages sent to arbitrary chats
type fakeSender struct {
	out []outgoing
}

func (s *fakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	s.out = append(s.out, outgoing{to: to, what: what, opts: opts, kind: "send"})
	return &tele.Message{}, nil
}

// testEnv wires a handler with in-memory stores and mocked collaborators
type testEnv struct {
	handler   *Handler
	lookup    *testutil.MockMovieLookup
	streaming *testutil.MockStreamingSearcher
	watched   *memory.WatchedRepo
	pending   *memory.PendingRepo
	sender    *fakeSender
}

func newTestEnv(opts Options) *testEnv {
	logger := testutil.NewTestLogger()
	env := &testEnv{
		lookup:    new(testutil.MockMovieLookup),
		streaming: new(testutil.MockStreamingSearcher),
		watched:   memory.NewWatchedRepo(),
		pending:   memory.NewPendingRepo(),
		sender:    &fakeSender{},
	}

	env.handler = NewHandler(
		nil,
		service.NewSearchService(env.lookup, "ru"),
		service.NewCardService(env.streaming, service.StreamingConfig{
			Name:      "Кинопоиск",
			SearchURL: "https://www.kinopoisk.ru/index.php?kp_query=",
		}, logger),
		service.NewWatchedService(env.watched),
		service.NewPendingService(env.pending, logger),
		opts,
		logger,
	)
	env.handler.sender = env.sender
	return env
}

var errStreamingDown = errors.New("streaming down")

var ctx = context.Background()
