package menu_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/todo/internal/adapters/linear"
	"go.trai.ch/todo/internal/adapters/telemetry"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports/mocks"
	"go.trai.ch/todo/internal/engine/menu"
	"go.uber.org/mock/gomock"
)

func lines(answers ...string) io.Reader {
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

// runTranscript drives a menu over a linear renderer and returns everything it printed.
func runTranscript(t *testing.T, list *domain.TaskList, in io.Reader, opts ...menu.Option) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	out := &bytes.Buffer{}
	m := menu.New(list, linear.NewRenderer(out), telemetry.NewNoOpTracer(), opts...)
	require.NoError(t, m.Run(context.Background(), in))
	return out.String()
}

func TestMenu_Transcript(t *testing.T) {
	in := lines(
		"1", "Buy milk", "", "home, food",
		"1", "Walk dog", "tomorrow", "",
		"2", "Buy milk",
		"2", "Nope",
		"4", "completed",
		"3", "Walk dog",
		"5",
		"6",
		"4", "",
		"9",
		"8",
	)

	out := runTranscript(t, domain.NewTaskList(), in)

	g := goldie.New(t)
	g.Assert(t, "transcript", []byte(out))
}

func TestMenu_AddParsesAnswers(t *testing.T) {
	list := domain.NewTaskList()
	runTranscript(t, list, lines(" 1 ", "  Pack  ", " friday ", " travel,, home ,", "8"))

	require.Equal(t, 1, list.Len())
	task := list.Current().Tasks()[0]
	assert.Equal(t, "  Pack  ", task.Description, "descriptions are kept as typed")
	assert.Equal(t, "friday", task.DueDate)
	assert.Equal(t, []string{"travel", "home"}, task.Tags)
	assert.False(t, task.Completed)
}

func TestMenu_UndoRevertsCompletion(t *testing.T) {
	list := domain.NewTaskList()
	runTranscript(t, list, lines("1", "a", "", "", "2", "a", "5", "8"))

	tasks := list.Current().Tasks()
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Completed)
	assert.True(t, list.CanRedo())
}

func TestMenu_UndoOnEmptyIsNoop(t *testing.T) {
	list := domain.NewTaskList()
	out := runTranscript(t, list, lines("5", "6", "8"))

	assert.Equal(t, 2, strings.Count(out, "Finished."))
	assert.Equal(t, 0, list.Len())
	assert.Empty(t, list.History())
}

func TestMenu_UndoKeepsOnlyTask(t *testing.T) {
	list := domain.NewTaskList()
	out := runTranscript(t, list, lines("1", "Buy milk", "", "", "5", "4", "all", "8"))

	assert.Contains(t, out, "Undo Finished.")
	assert.Contains(t, out, "1. Buy milk - Pending")
	assert.Equal(t, 1, list.Len())
}

func TestMenu_DescriptionsMatchAsTyped(t *testing.T) {
	list := domain.NewTaskList()
	out := runTranscript(t, list, lines("1", " Buy milk", "", "", "2", "Buy milk", "2", " Buy milk", "8"))

	assert.Contains(t, out, "Task 'Buy milk' not found.")
	assert.Contains(t, out, "Task ' Buy milk' marked as completed.")
	tasks := list.Current().Tasks()
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
}

func TestMenu_DefaultFilter(t *testing.T) {
	list := domain.NewTaskList()
	list.AddTask(domain.NewTask("a"))
	list.AddTask(domain.NewTask("b"))
	list.MarkCompleted("a")

	out := runTranscript(t, list, lines("4", "", "4", "bogus"), menu.WithDefaultFilter(domain.FilterPending))

	listings := strings.Split(out, "Task List:")
	require.Len(t, listings, 3)
	assert.Contains(t, listings[1], "1. b - Pending")
	assert.NotContains(t, listings[1], "a - Completed")
	assert.Contains(t, listings[2], "1. a - Completed", "unknown filters list every task")
	assert.Contains(t, listings[2], "2. b - Pending")
}

func TestMenu_EndOfInputExits(t *testing.T) {
	t.Run("at the choice prompt", func(t *testing.T) {
		out := runTranscript(t, domain.NewTaskList(), strings.NewReader(""))
		assert.True(t, strings.HasSuffix(out, menu.PromptChoice))
	})

	t.Run("in the middle of an add", func(t *testing.T) {
		list := domain.NewTaskList()
		out := runTranscript(t, list, strings.NewReader("1\nhalf"))
		assert.Equal(t, 0, list.Len())
		assert.NotContains(t, out, "added")
	})
}

func TestMenu_RendererCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	gomock.InOrder(
		r.EXPECT().Menu(menu.Options),
		r.EXPECT().Prompt(menu.PromptChoice),
		r.EXPECT().Prompt(menu.PromptDescription),
		r.EXPECT().Prompt(menu.PromptDueDate),
		r.EXPECT().Prompt(menu.PromptTags),
		r.EXPECT().Message("Task 'x' added."),
		r.EXPECT().Menu(menu.Options),
		r.EXPECT().Prompt(menu.PromptChoice),
		r.EXPECT().Prompt(menu.PromptFilter),
		r.EXPECT().Tasks([]*domain.Task{{Description: "x", Tags: []string{"t"}}}),
		r.EXPECT().Menu(menu.Options),
		r.EXPECT().Prompt(menu.PromptChoice),
		r.EXPECT().History(gomock.Len(1)),
		r.EXPECT().Menu(menu.Options),
		r.EXPECT().Prompt(menu.PromptChoice),
		r.EXPECT().Warn(menu.MsgInvalidChoice),
		r.EXPECT().Menu(menu.Options),
		r.EXPECT().Prompt(menu.PromptChoice),
	)

	m := menu.New(domain.NewTaskList(), r, telemetry.NewNoOpTracer())
	err := m.Run(context.Background(), lines("1", "x", "", "t", "4", "pending", "7", "", "8"))
	require.NoError(t, err)
}

func TestMenu_Spans(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	m := menu.New(domain.NewTaskList(), linear.NewRenderer(io.Discard), tracer, menu.WithSessionID("session-1"))
	require.NoError(t, m.Run(context.Background(), lines("1", "a", "", "", "2", "a", "3", "a", "4", "", "5", "6", "7", "8")))

	var names []string
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
		var session string
		for _, kv := range s.Attributes() {
			if kv.Key == "session.id" {
				session = kv.Value.AsString()
			}
		}
		assert.Equal(t, "session-1", session, s.Name())
	}
	assert.Equal(t, []string{
		"todo.add", "todo.complete", "todo.delete", "todo.view", "todo.undo", "todo.redo", "todo.history",
	}, names)
}

func TestMenu_ContextCancellation(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	m := menu.New(domain.NewTaskList(), linear.NewRenderer(io.Discard), telemetry.NewNoOpTracer())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, pr) }()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("menu did not stop after cancellation")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestMenu_InputError(t *testing.T) {
	m := menu.New(domain.NewTaskList(), linear.NewRenderer(io.Discard), telemetry.NewNoOpTracer())

	err := m.Run(context.Background(), failingReader{})
	require.ErrorContains(t, err, domain.ErrInputReadFailed.Error())
	require.ErrorContains(t, err, "device gone")
}
