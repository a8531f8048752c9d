package cascade

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/archive"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/models"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/messagestatuses"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/repositories/profiles"
	"github.com/giuseppedipinto/io-functions-admin/internal/logging"
)

// callLog records collaborator calls across all fakes in invocation order,
// so tests can assert archive-before-delete and children-before-parent.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, s)
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

func (l *callLog) count(prefix string) int {
	n := 0
	for _, c := range l.all() {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (l *callLog) indexOf(call string) int {
	for i, c := range l.all() {
		if c == call {
			return i
		}
	}
	return -1
}

// sliceCursor serves pre-baked pages and then an empty page forever.
type sliceCursor[T any] struct {
	log   *callLog
	name  string
	pages [][]T
	i     int
	err   error
}

func (c *sliceCursor[T]) NextPage(ctx context.Context) ([]T, error) {
	c.log.add(c.name + ".NextPage")
	if c.err != nil {
		return nil, c.err
	}
	if c.i >= len(c.pages) {
		return nil, nil
	}
	p := c.pages[c.i]
	c.i++
	return p, nil
}

type fakeArchiver struct {
	log  *callLog
	fail map[string]error // object name -> error
}

func (a *fakeArchiver) Put(ctx context.Context, dest archive.Destination, name string, payload any) error {
	if err, ok := a.fail[name]; ok {
		a.log.add("putfail:" + name)
		return err
	}
	a.log.add("put:" + dest.ObjectKey(name))
	return nil
}

type fakeProfiles struct {
	log       *callLog
	pages     [][]*models.Profile
	pageErr   error
	deleteErr map[string]error
}

func (f *fakeProfiles) Versions(fiscalCode string) profiles.VersionCursor {
	f.log.add("profiles.Versions")
	return &sliceCursor[*models.Profile]{log: f.log, name: "profiles", pages: f.pages, err: f.pageErr}
}

func (f *fakeProfiles) DeleteVersion(ctx context.Context, fiscalCode string, id string) error {
	if err, ok := f.deleteErr[id]; ok {
		return err
	}
	f.log.add("del:profile:" + id)
	return nil
}

type fakeMessages struct {
	log       *callLog
	msgs      []*models.Message
	findErr   error
	deleteErr map[string]error
}

func (f *fakeMessages) FindAll(ctx context.Context, fiscalCode string) ([]*models.Message, error) {
	f.log.add("messages.FindAll")
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.msgs, nil
}

func (f *fakeMessages) Delete(ctx context.Context, fiscalCode string, id string) error {
	if err, ok := f.deleteErr[id]; ok {
		return err
	}
	f.log.add("del:message:" + id)
	return nil
}

type fakeStatuses struct {
	log       *callLog
	pages     map[string][][]*models.MessageStatus
	deleteErr map[string]error
}

func (f *fakeStatuses) Versions(messageID string) messagestatuses.VersionCursor {
	f.log.add("statuses.Versions:" + messageID)
	return &sliceCursor[*models.MessageStatus]{log: f.log, name: "statuses", pages: f.pages[messageID]}
}

func (f *fakeStatuses) DeleteVersion(ctx context.Context, messageID string, id string) error {
	if err, ok := f.deleteErr[id]; ok {
		return err
	}
	f.log.add("del:status:" + id)
	return nil
}

type fixture struct {
	log      *callLog
	arch     *fakeArchiver
	profiles *fakeProfiles
	messages *fakeMessages
	statuses *fakeStatuses
	svc      *Service
}

const testNowMillis = 1700000000000

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := &callLog{}
	f := &fixture{
		log:      log,
		arch:     &fakeArchiver{log: log, fail: map[string]error{}},
		profiles: &fakeProfiles{log: log, deleteErr: map[string]error{}},
		messages: &fakeMessages{log: log, deleteErr: map[string]error{}},
		statuses: &fakeStatuses{log: log, pages: map[string][][]*models.MessageStatus{}, deleteErr: map[string]error{}},
	}

	discard := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.svc = NewService(f.profiles, f.messages, f.statuses, f.arch, "user-data-backup", discard)
	f.svc.now = func() time.Time { return time.UnixMilli(testNowMillis) }
	return f
}

func validInput() Input {
	return Input{FiscalCode: "AAAAAA00A00A000A", UserDataDeleteRequestID: "REQ1"}
}
