package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	assistantdto "mindmate/internal/modules/assistant/dto"
	chatout "mindmate/internal/modules/chat/adapter/out"
	"mindmate/internal/modules/chat/domain"
	"mindmate/internal/modules/chat/dto"
	chatin "mindmate/internal/modules/chat/port/in"
	"mindmate/internal/modules/chat/service"
	"mindmate/internal/modules/chat/usecase"
	storeout "mindmate/internal/modules/store/adapter/out"
	storedomain "mindmate/internal/modules/store/domain"
	storeservice "mindmate/internal/modules/store/service"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/id"
	"mindmate/internal/platform/logger"
	"mindmate/internal/platform/tx"
)

type fixedClock struct{ at time.Time }

func (f fixedClock) Now() time.Time { return f.at }

type fakeAssistant struct {
	reply string
	err   error
	seen  []assistantdto.TurnInput
}

func (f *fakeAssistant) Complete(_ context.Context, input assistantdto.CompleteInput) (assistantdto.CompleteOutput, error) {
	f.seen = input.Turns
	return assistantdto.CompleteOutput{Text: f.reply}, f.err
}

func (f *fakeAssistant) Transcribe(context.Context, assistantdto.TranscribeInput) (assistantdto.TranscribeOutput, error) {
	return assistantdto.TranscribeOutput{}, errors.New("not used")
}

type harness struct {
	uc      chatin.Usecase
	backend *storeout.MemoryBackend
	userID  string
}

func newHarness(t *testing.T, assistant *fakeAssistant) harness {
	t.Helper()
	clk := clock.NewMonotonic(fixedClock{at: time.Date(2026, 5, 10, 18, 30, 0, 0, time.UTC)})
	backend := storeout.NewMemoryBackend()
	docs := storeservice.NewDocumentService(backend, &tx.Serial{}, clk, logger.NewNop())
	userID := "user_1"
	err := docs.Update(context.Background(), func(doc *storedomain.Document) error {
		stamp := storedomain.FormatTime(clk.Now())
		doc.Users[userID] = storedomain.UserRecord{ID: userID, Name: "Анна", Email: "anna@example.com", CreatedAt: stamp, UpdatedAt: stamp}
		return nil
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := service.NewChatService(clk, id.Prefixed{Clock: clk}, docs)
	var uc chatin.Usecase
	if assistant == nil {
		uc = usecase.NewInteractor(svc, nil, chatout.NewMarkdownTranscriptWriter(t.TempDir()), logger.NewNop())
	} else {
		uc = usecase.NewInteractor(svc, assistant, chatout.NewMarkdownTranscriptWriter(t.TempDir()), logger.NewNop())
	}
	return harness{uc: uc, backend: backend, userID: userID}
}

func TestMessagesReadBackInInsertionOrder(t *testing.T) {
	t.Parallel()
	h := newHarness(t, nil)
	ctx := context.Background()
	session, err := h.uc.CreateSession(ctx, dto.CreateSessionInput{UserID: h.userID})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	for _, content := range []string{"A", "B", "C"} {
		if _, err := h.uc.AddMessage(ctx, dto.AddMessageInput{SessionID: session.ID, UserID: h.userID, Content: content, Role: "user"}); err != nil {
			t.Fatalf("add %s: %v", content, err)
		}
	}
	messages, err := h.uc.GetMessages(ctx, session.ID)
	if err != nil {
		t.Fatalf("get messages: %v", err)
	}
	got := make([]string, 0, len(messages))
	for _, m := range messages {
		got = append(got, m.Content)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	sessions, err := h.uc.GetUserSessions(ctx, dto.ListSessionsInput{UserID: h.userID})
	if err != nil || len(sessions) != 1 || sessions[0].MessageCount != 3 {
		t.Fatalf("expected message count 3, got %+v (%v)", sessions, err)
	}
}

func TestAddMessageValidatesRoleAndSession(t *testing.T) {
	t.Parallel()
	h := newHarness(t, nil)
	ctx := context.Background()
	session, _ := h.uc.CreateSession(ctx, dto.CreateSessionInput{UserID: h.userID})
	if _, err := h.uc.AddMessage(ctx, dto.AddMessageInput{SessionID: session.ID, UserID: h.userID, Content: "x", Role: "system"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid role, got %v", err)
	}
	if _, err := h.uc.AddMessage(ctx, dto.AddMessageInput{SessionID: "chat_session_missing", UserID: h.userID, Content: "x", Role: "user"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddMessageRequiresKnownAuthor(t *testing.T) {
	t.Parallel()
	h := newHarness(t, nil)
	ctx := context.Background()
	session, err := h.uc.CreateSession(ctx, dto.CreateSessionInput{UserID: h.userID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := h.uc.AddMessage(ctx, dto.AddMessageInput{SessionID: session.ID, UserID: "ghost", Content: "x", Role: "user"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown author, got %v", err)
	}
	msg, err := h.uc.AddMessage(ctx, dto.AddMessageInput{SessionID: session.ID, UserID: h.userID, Content: "привет", Role: "user"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	raw, err := h.backend.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	doc, err := storedomain.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := doc.UserStats["ghost"]; ok {
		t.Fatalf("unknown author must not get a stats row")
	}
	if len(doc.UserStats) != len(doc.Users) {
		t.Fatalf("stats rows %d, users %d", len(doc.UserStats), len(doc.Users))
	}
	if got := doc.ChatSessions[session.ID].MessageCount; got != 1 {
		t.Fatalf("rejected message must not count, got %d", got)
	}
	stats := doc.UserStats[h.userID]
	if stats.LastActivity != storedomain.FormatTime(msg.Timestamp) {
		t.Fatalf("owner activity %q, message at %s", stats.LastActivity, msg.Timestamp)
	}
}

func TestEndUnknownSessionLeavesDocumentUntouched(t *testing.T) {
	t.Parallel()
	h := newHarness(t, nil)
	ctx := context.Background()
	if _, err := h.uc.CreateSession(ctx, dto.CreateSessionInput{UserID: h.userID}); err != nil {
		t.Fatalf("create: %v", err)
	}
	before, _ := h.backend.Load(ctx)
	if _, err := h.uc.EndSession(ctx, "chat_session_unknown"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	after, _ := h.backend.Load(ctx)
	if string(before) != string(after) {
		t.Fatalf("document changed after failed end-session")
	}
}

func TestUserSessionsNewestFirstWithDefaultLimit(t *testing.T) {
	t.Parallel()
	h := newHarness(t, nil)
	ctx := context.Background()
	var last string
	for i := 0; i < 12; i++ {
		s, err := h.uc.CreateSession(ctx, dto.CreateSessionInput{UserID: h.userID})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		last = s.ID
	}
	sessions, err := h.uc.GetUserSessions(ctx, dto.ListSessionsInput{UserID: h.userID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != domain.DefaultSessionLimit {
		t.Fatalf("expected %d sessions, got %d", domain.DefaultSessionLimit, len(sessions))
	}
	if sessions[0].ID != last {
		t.Fatalf("expected newest session first")
	}
}

func TestOpenGreetsAndReplySendsFullHistory(t *testing.T) {
	t.Parallel()
	assistant := &fakeAssistant{reply: "Расскажите, когда это началось?"}
	h := newHarness(t, assistant)
	ctx := context.Background()

	opened, err := h.uc.Open(ctx, dto.CreateSessionInput{UserID: h.userID})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if opened.Greeting.Content != domain.Greeting || opened.Greeting.Role != "assistant" {
		t.Fatalf("unexpected greeting %+v", opened.Greeting)
	}
	out, err := h.uc.Reply(ctx, dto.ReplyInput{SessionID: opened.Session.ID, UserID: h.userID, Text: "Плохо сплю"})
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if out.Fallback || out.Reply.Content != assistant.reply {
		t.Fatalf("unexpected reply %+v", out)
	}
	want := []assistantdto.TurnInput{
		{Role: "assistant", Content: domain.Greeting},
		{Role: "user", Content: "Плохо сплю"},
	}
	if diff := cmp.Diff(want, assistant.seen); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestReplyFallsBackWhenAssistantFails(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeAssistant{err: errors.New("upstream down")})
	ctx := context.Background()
	opened, _ := h.uc.Open(ctx, dto.CreateSessionInput{UserID: h.userID})
	out, err := h.uc.Reply(ctx, dto.ReplyInput{SessionID: opened.Session.ID, UserID: h.userID, Text: "Привет"})
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if !out.Fallback || out.Reply.Content != domain.Fallback {
		t.Fatalf("expected fallback reply, got %+v", out)
	}
	messages, _ := h.uc.GetMessages(ctx, opened.Session.ID)
	if len(messages) != 3 {
		t.Fatalf("expected greeting, question and fallback, got %d", len(messages))
	}
}

func TestExportWritesMarkdownTranscript(t *testing.T) {
	t.Parallel()
	h := newHarness(t, &fakeAssistant{reply: "Я вас слышу."})
	ctx := context.Background()
	opened, _ := h.uc.Open(ctx, dto.CreateSessionInput{UserID: h.userID, Title: "Вечерний разговор"})
	if _, err := h.uc.Reply(ctx, dto.ReplyInput{SessionID: opened.Session.ID, UserID: h.userID, Text: "Устала"}); err != nil {
		t.Fatalf("reply: %v", err)
	}
	out, err := h.uc.Export(ctx, opened.Session.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Messages != 3 || !strings.HasSuffix(out.Path, "183000-вечерний-разговор.md") {
		t.Fatalf("unexpected export %+v", out)
	}
	raw, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	text := string(raw)
	for _, want := range []string{"message_count: 3", "# Вечерний разговор", "**Марк**", "**Вы**", "Устала"} {
		if !strings.Contains(text, want) {
			t.Fatalf("transcript missing %q:\n%s", want, text)
		}
	}
	if _, err := h.uc.Export(ctx, "chat_session_missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
