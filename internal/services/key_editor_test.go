package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bozothegeek/pegasus-frontend/internal/adapters/keyinput"
	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	portsmocks "github.com/bozothegeek/pegasus-frontend/internal/ports/mocks"
)

var eventUp = int(domain.EventUp)

func newTestEditor(t *testing.T, overrides domain.BindingOverrides) (*KeyEditorService, *portsmocks.MockBindingStore) {
	t.Helper()
	store := portsmocks.NewMockBindingStore(t)
	store.EXPECT().Load(mock.Anything).Return(overrides, nil).Once()
	editor := NewKeyEditorService(context.Background(), store, keyinput.NewDecoder(), keyinput.NewNamer())
	return editor, store
}

func countNotifications(editor *KeyEditorService) *int {
	count := 0
	editor.Subscribe(func() { count++ })
	return &count
}

func TestNewKeyEditorService_Defaults(t *testing.T) {
	editor, _ := newTestEditor(t, domain.BindingOverrides{})

	assert.Equal(t, domain.EventCount, editor.EventCount())
	assert.Equal(t, []domain.KeyCode{domain.KeyUp, domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))
	assert.True(t, editor.Bindings().Equal(domain.DefaultBindings()))
	assert.NoError(t, editor.PersistError())
}

func TestNewKeyEditorService_AppliesOverrides(t *testing.T) {
	editor, _ := newTestEditor(t, domain.BindingOverrides{
		domain.EventUp:      {domain.KeyW},
		domain.EventDetails: {},
		domain.KeyEvent(42): {domain.KeySpace},
	})

	assert.Equal(t, []domain.KeyCode{domain.KeyW}, editor.KeyCodesOf(eventUp))
	assert.Empty(t, editor.KeyCodesOf(int(domain.EventDetails)))
	assert.Equal(t, []domain.KeyCode{domain.KeyDown, domain.GamepadDPadDown}, editor.KeyCodesOf(int(domain.EventDown)))
}

func TestNewKeyEditorService_LoadFailureUsesDefaults(t *testing.T) {
	store := portsmocks.NewMockBindingStore(t)
	store.EXPECT().Load(mock.Anything).Return(nil, errors.New("disk on fire"))

	editor := NewKeyEditorService(context.Background(), store, keyinput.NewDecoder(), keyinput.NewNamer())

	assert.True(t, editor.Bindings().Equal(domain.DefaultBindings()))
}

func TestAddKey(t *testing.T) {
	editor, store := newTestEditor(t, domain.BindingOverrides{})
	notified := countNotifications(editor)

	var saved domain.BindingTable
	store.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, table domain.BindingTable) { saved = table }).
		Return(nil).Once()

	editor.AddKey(context.Background(), eventUp, "w")

	assert.Equal(t, []domain.KeyCode{domain.KeyUp, domain.KeyW, domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))
	assert.Equal(t, 1, *notified)
	assert.True(t, saved.Equal(editor.Bindings()), "the whole table is persisted")
}

func TestAddKey_DuplicateDoesNothing(t *testing.T) {
	editor, _ := newTestEditor(t, domain.BindingOverrides{})
	notified := countNotifications(editor)

	editor.AddKey(context.Background(), eventUp, domain.KeyUp)

	assert.Equal(t, []domain.KeyCode{domain.KeyUp, domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))
	assert.Equal(t, 0, *notified)
}

func TestAddKey_InvalidEventOrInput(t *testing.T) {
	tests := []struct {
		name    string
		eventID int
		input   any
	}{
		{"negative event", -1, "w"},
		{"event past the end", domain.EventCount, "w"},
		{"undecodable string", eventUp, "not a key"},
		{"unsupported type", eventUp, 3.14},
		{"nil input", eventUp, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor, _ := newTestEditor(t, domain.BindingOverrides{})
			notified := countNotifications(editor)

			editor.AddKey(context.Background(), tt.eventID, tt.input)

			assert.True(t, editor.Bindings().Equal(domain.DefaultBindings()))
			assert.Equal(t, 0, *notified)
		})
	}
}

func TestAddKey_UsesDecoder(t *testing.T) {
	store := portsmocks.NewMockBindingStore(t)
	store.EXPECT().Load(mock.Anything).Return(domain.BindingOverrides{}, nil)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	decoder := portsmocks.NewMockInputDecoder(t)
	decoder.EXPECT().Decode("jump").Return(domain.KeySpace, true)

	editor := NewKeyEditorService(context.Background(), store, decoder, keyinput.NewNamer())
	editor.AddKey(context.Background(), eventUp, "jump")

	assert.Contains(t, editor.KeyCodesOf(eventUp), domain.KeySpace)
}

func TestDelKey(t *testing.T) {
	editor, store := newTestEditor(t, domain.BindingOverrides{})
	notified := countNotifications(editor)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)

	editor.DelKey(context.Background(), eventUp, domain.KeyUp)
	assert.Equal(t, []domain.KeyCode{domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))

	editor.DelKey(context.Background(), eventUp, domain.GamepadDPadUp)
	assert.Empty(t, editor.KeyCodesOf(eventUp), "removing the last key leaves the event unbound")
	assert.NotNil(t, editor.KeyCodesOf(eventUp))

	assert.Equal(t, 2, *notified)
}

func TestDelKey_NotBoundOrInvalid(t *testing.T) {
	editor, _ := newTestEditor(t, domain.BindingOverrides{})
	notified := countNotifications(editor)

	editor.DelKey(context.Background(), eventUp, domain.KeyW)
	editor.DelKey(context.Background(), 99, domain.KeyUp)

	assert.True(t, editor.Bindings().Equal(domain.DefaultBindings()))
	assert.Equal(t, 0, *notified)
}

func TestReplaceKey(t *testing.T) {
	tests := []struct {
		name     string
		old      domain.KeyCode
		input    any
		expected []domain.KeyCode
		changed  bool
	}{
		{
			name:     "swaps old for new",
			old:      domain.KeyUp,
			input:    "w",
			expected: []domain.KeyCode{domain.KeyW, domain.GamepadDPadUp},
			changed:  true,
		},
		{
			name:     "old not bound still adds",
			old:      domain.KeyQ,
			input:    "w",
			expected: []domain.KeyCode{domain.KeyUp, domain.KeyW, domain.GamepadDPadUp},
			changed:  true,
		},
		{
			name:     "undecodable input still removes",
			old:      domain.KeyUp,
			input:    "???",
			expected: []domain.KeyCode{domain.GamepadDPadUp},
			changed:  true,
		},
		{
			name:     "new already bound collapses",
			old:      domain.KeyUp,
			input:    domain.GamepadDPadUp,
			expected: []domain.KeyCode{domain.GamepadDPadUp},
			changed:  true,
		},
		{
			name:     "same key is a no-op",
			old:      domain.KeyUp,
			input:    domain.KeyUp,
			expected: []domain.KeyCode{domain.KeyUp, domain.GamepadDPadUp},
			changed:  false,
		},
		{
			name:     "nothing to remove and nothing new",
			old:      domain.KeyQ,
			input:    domain.KeyUp,
			expected: []domain.KeyCode{domain.KeyUp, domain.GamepadDPadUp},
			changed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor, store := newTestEditor(t, domain.BindingOverrides{})
			notified := countNotifications(editor)
			if tt.changed {
				store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
			}

			editor.ReplaceKey(context.Background(), eventUp, tt.old, tt.input)

			assert.Equal(t, tt.expected, editor.KeyCodesOf(eventUp))
			if tt.changed {
				assert.Equal(t, 1, *notified, "replace notifies once")
			} else {
				assert.Equal(t, 0, *notified)
			}
		})
	}
}

func TestReplaceKey_InvalidEvent(t *testing.T) {
	editor, _ := newTestEditor(t, domain.BindingOverrides{})
	notified := countNotifications(editor)

	editor.ReplaceKey(context.Background(), domain.EventCount+3, domain.KeyUp, "w")

	assert.Equal(t, 0, *notified)
}

func TestResetKeys(t *testing.T) {
	editor, store := newTestEditor(t, domain.BindingOverrides{
		domain.EventUp:     {domain.KeyW},
		domain.EventCancel: {},
	})
	notified := countNotifications(editor)
	store.EXPECT().Reset(mock.Anything).Return(nil).Twice()

	editor.ResetKeys(context.Background())
	assert.True(t, editor.Bindings().Equal(domain.DefaultBindings()))

	editor.ResetKeys(context.Background())
	assert.Equal(t, 2, *notified, "reset always notifies")
}

func TestKeyCodesOf_InvalidEvent(t *testing.T) {
	editor, _ := newTestEditor(t, domain.BindingOverrides{})

	for _, id := range []int{-1, domain.EventCount, 1000} {
		codes := editor.KeyCodesOf(id)
		assert.NotNil(t, codes)
		assert.Empty(t, codes)
	}
}

func TestKeyCodesOf_ReturnsCopy(t *testing.T) {
	editor, _ := newTestEditor(t, domain.BindingOverrides{})

	codes := editor.KeyCodesOf(eventUp)
	codes[0] = domain.KeyF1

	assert.Equal(t, []domain.KeyCode{domain.KeyUp, domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))
}

func TestKeyName(t *testing.T) {
	namer := portsmocks.NewMockKeyNamer(t)
	namer.EXPECT().KeyName(domain.KeyW).Return("W")

	store := portsmocks.NewMockBindingStore(t)
	store.EXPECT().Load(mock.Anything).Return(domain.BindingOverrides{}, nil)

	editor := NewKeyEditorService(context.Background(), store, keyinput.NewDecoder(), namer)

	assert.Equal(t, "W", editor.KeyName(domain.KeyW))
}

func TestPersistFailureKeepsChange(t *testing.T) {
	editor, store := newTestEditor(t, domain.BindingOverrides{})
	notified := countNotifications(editor)

	store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("read-only filesystem")).Once()
	editor.AddKey(context.Background(), eventUp, "w")

	assert.Contains(t, editor.KeyCodesOf(eventUp), domain.KeyW)
	assert.Equal(t, 1, *notified)
	require.Error(t, editor.PersistError())
	assert.ErrorIs(t, editor.PersistError(), domain.ErrPersistence)

	// The next successful write stores the full current state
	var saved domain.BindingTable
	store.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, table domain.BindingTable) { saved = table }).
		Return(nil).Once()
	editor.AddKey(context.Background(), eventUp, "ctrl")

	assert.NoError(t, editor.PersistError())
	assert.True(t, saved[domain.EventUp].Has(domain.KeyW))
	assert.True(t, saved[domain.EventUp].Has(domain.KeyCtrl))
}

func TestResetFailureIsRecorded(t *testing.T) {
	editor, store := newTestEditor(t, domain.BindingOverrides{domain.EventUp: {domain.KeyW}})
	store.EXPECT().Reset(mock.Anything).Return(errors.New("locked"))

	editor.ResetKeys(context.Background())

	assert.ErrorIs(t, editor.PersistError(), domain.ErrPersistence)
	assert.True(t, editor.Bindings().Equal(domain.DefaultBindings()))
}

func TestSubscriptions(t *testing.T) {
	editor, store := newTestEditor(t, domain.BindingOverrides{})
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	var order []string
	first := editor.Subscribe(func() { order = append(order, "first") })
	editor.Subscribe(func() { order = append(order, "second") })

	editor.AddKey(context.Background(), eventUp, "w")
	assert.Equal(t, []string{"first", "second"}, order)

	first.Unsubscribe()
	first.Unsubscribe()
	order = nil

	editor.DelKey(context.Background(), eventUp, domain.KeyW)
	assert.Equal(t, []string{"second"}, order)
}

func TestSubscriptions_UnsubscribeDuringNotify(t *testing.T) {
	editor, store := newTestEditor(t, domain.BindingOverrides{})
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	calls := 0
	var sub *Subscription
	sub = editor.Subscribe(func() {
		calls++
		sub.Unsubscribe()
	})
	other := countNotifications(editor)

	editor.AddKey(context.Background(), eventUp, "w")
	editor.AddKey(context.Background(), eventUp, "ctrl")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, *other)
}

func TestMoveUpScenario(t *testing.T) {
	ctx := context.Background()
	editor, store := newTestEditor(t, domain.BindingOverrides{})
	notified := countNotifications(editor)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(3)
	store.EXPECT().Reset(mock.Anything).Return(nil).Once()

	editor.AddKey(ctx, eventUp, domain.KeyW)
	assert.Equal(t, []domain.KeyCode{domain.KeyUp, domain.KeyW, domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))

	editor.DelKey(ctx, eventUp, domain.KeyUp)
	assert.Equal(t, []domain.KeyCode{domain.KeyW, domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))

	editor.ReplaceKey(ctx, eventUp, domain.KeyW, domain.KeyCtrl)
	assert.Equal(t, []domain.KeyCode{domain.KeyCtrl, domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))

	editor.ResetKeys(ctx)
	assert.Equal(t, []domain.KeyCode{domain.KeyUp, domain.GamepadDPadUp}, editor.KeyCodesOf(eventUp))

	assert.Equal(t, 4, *notified)
}
