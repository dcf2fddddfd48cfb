package cache

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leextar/readercache/internal/format"
)

func TestScenarioMRU(t *testing.T) {
	for _, mode := range []KeyMode{KeyPath, KeyFingerprint} {
		t.Run(mode.String(), func(t *testing.T) {
			s := newStore(t, mode)
			keyA, keyB := PathKey("fileA"), PathKey("fileB")
			if mode == KeyFingerprint {
				keyA, keyB = FingerprintKey(fp(0xA), "fileA"), FingerprintKey(fp(0xB), "fileB")
			}

			a, ok, err := s.Insert(keyA)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, 0, a.Index())
			require.Equal(t, int32(0), a.ID())
			require.Equal(t, "fileA", a.DisplayName())

			b, ok, err := s.Insert(keyB)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, int32(0), b.ID())
			require.Equal(t, "fileB", b.DisplayName())
			require.Equal(t, []string{"fileB", "fileA"}, names(s))
			it, _ := s.Item(1)
			require.Equal(t, int32(1), it.ID())

			opened, ok := s.Open(1)
			require.True(t, ok)
			require.Equal(t, "fileA", opened.DisplayName())
			require.Equal(t, []string{"fileA", "fileB"}, names(s))
			sel, ok := s.Selected()
			require.True(t, ok)
			require.Equal(t, 1, sel, "selection keeps the index passed to Open")

			s.DeleteAll()
			require.Equal(t, 0, s.Len())
			_, ok = s.Selected()
			require.False(t, ok)
			require.Equal(t, format.HeaderSize, s.Size())
		})
	}
}

func TestInsertDuplicateRejected(t *testing.T) {
	s := newStore(t, KeyPath)
	for _, n := range []string{"a", "b", "c"} {
		_, ok, err := s.Insert(PathKey(n))
		require.NoError(t, err)
		require.True(t, ok)
	}
	before := append([]byte(nil), s.mem.data...)

	_, ok, err := s.Insert(PathKey("b"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 3, s.Len())
	require.Equal(t, before, s.mem.data)
}

func TestInsertKeyModeMismatch(t *testing.T) {
	s := newStore(t, KeyPath)
	_, ok, err := s.Insert(FingerprintKey(fp(1), "x"))
	require.ErrorIs(t, err, ErrKeyMode)
	require.False(t, ok)
	_, ok = s.Find(FingerprintKey(fp(1), "x"))
	require.False(t, ok)
	require.Equal(t, 0, s.Len())
}

func TestInsertBeforeInit(t *testing.T) {
	s := New(Options{Path: t.TempDir() + "/c"})
	_, _, err := s.Insert(PathKey("a"))
	require.ErrorIs(t, err, ErrNotInitialized)
	require.ErrorIs(t, s.Save(), ErrNotInitialized)
	require.NoError(t, s.Shutdown())
	require.Equal(t, 0, s.Len())
}

func TestFindFingerprintRefreshesName(t *testing.T) {
	s := newStore(t, KeyFingerprint)
	_, _, err := s.Insert(FingerprintKey(fp(7), "old/path.txt"))
	require.NoError(t, err)
	_, _, err = s.Insert(FingerprintKey(fp(8), "other.txt"))
	require.NoError(t, err)

	it, ok := s.Find(FingerprintKey(fp(7), "new/path.txt"))
	require.True(t, ok)
	require.Equal(t, 1, it.Index())
	require.Equal(t, "new/path.txt", it.DisplayName())

	// an empty name only looks up
	it, ok = s.Find(FingerprintKey(fp(7), ""))
	require.True(t, ok)
	require.Equal(t, "new/path.txt", it.DisplayName())

	// a renamed duplicate is still a duplicate, and still refreshes
	_, ok, err = s.Insert(FingerprintKey(fp(8), "moved.txt"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, []string{"moved.txt", "new/path.txt"}, names(s))
}

func TestPathKeyTruncatedNameStillMatches(t *testing.T) {
	s := newStore(t, KeyPath)
	long := strings.Repeat("d", format.MaxPath+40)
	it, ok, err := s.Insert(PathKey(long))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, it.DisplayName(), format.MaxPath-1)

	_, ok = s.Find(PathKey(long))
	require.True(t, ok)
	_, ok, err = s.Insert(PathKey(long))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOpenOutOfRange(t *testing.T) {
	s := newStore(t, KeyPath)
	_, _, _ = s.Insert(PathKey("a"))
	for _, i := range []int{-1, 1, 99} {
		_, ok := s.Open(i)
		require.False(t, ok, "index %d", i)
	}
	_, ok := s.Selected()
	require.False(t, ok)
}

func TestDelete(t *testing.T) {
	s := newStore(t, KeyPath)
	for _, n := range []string{"e", "d", "c", "b", "a"} {
		_, _, err := s.Insert(PathKey(n))
		require.NoError(t, err)
	}
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, names(s))

	require.True(t, s.Delete(1))
	require.Equal(t, []string{"a", "c", "d", "e"}, names(s))
	requireIDs(t, s)
	_, ok := s.Find(PathKey("b"))
	require.False(t, ok)

	require.True(t, s.Delete(3))
	require.Equal(t, []string{"a", "c", "d"}, names(s))
	require.True(t, s.Delete(0))
	require.Equal(t, []string{"c", "d"}, names(s))
	requireIDs(t, s)

	require.False(t, s.Delete(2))
	require.False(t, s.Delete(-1))
	require.Equal(t, 2, s.Len())
}

func TestDeleteAdjustsSelection(t *testing.T) {
	tests := []struct {
		name    string
		open    int
		del     int
		wantSel int
		wantOK  bool
	}{
		{"before selection shifts it down", 3, 0, 2, true},
		{"at selection clears it", 3, 3, 0, false},
		{"after selection keeps it", 1, 2, 1, true},
		{"last record selected shifts with it", 3, 1, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, KeyPath)
			for _, n := range []string{"d", "c", "b", "a"} {
				_, _, err := s.Insert(PathKey(n))
				require.NoError(t, err)
			}
			_, ok := s.Open(tt.open)
			require.True(t, ok)

			require.True(t, s.Delete(tt.del))
			sel, ok := s.Selected()
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.wantSel, sel)
				require.Less(t, sel, s.Len())
			}
		})
	}
}

func TestDeleteSelectionFollowsRecord(t *testing.T) {
	s := newStore(t, KeyPath)
	for _, n := range []string{"d", "c", "b", "a"} {
		_, _, _ = s.Insert(PathKey(n))
	}
	// a b c d: Open(2) puts c first and stores 2, which now holds b.
	_, _ = s.Open(2)
	require.Equal(t, []string{"c", "a", "b", "d"}, names(s))

	require.True(t, s.Delete(0))
	sel, ok := s.Selected()
	require.True(t, ok)
	it, _ := s.Item(sel)
	require.Equal(t, "b", it.DisplayName())
}

func TestMove(t *testing.T) {
	tests := []struct {
		from, to int
		want     string
	}{
		{0, 0, "abcde"},
		{4, 1, "aebcd"},
		{1, 4, "acdeb"},
		{0, 4, "bcdea"},
		{4, 0, "eabcd"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_to_%d", tt.from, tt.to), func(t *testing.T) {
			s := newStore(t, KeyPath)
			for _, n := range []string{"e", "d", "c", "b", "a"} {
				_, _, _ = s.Insert(PathKey(n))
			}
			require.True(t, s.Move(tt.from, tt.to))
			require.Equal(t, strings.Split(tt.want, ""), names(s))
			requireIDs(t, s)

			require.True(t, s.Move(tt.to, tt.from))
			require.Equal(t, []string{"a", "b", "c", "d", "e"}, names(s))
		})
	}
}

func TestMoveOutOfRange(t *testing.T) {
	s := newStore(t, KeyPath)
	_, _, _ = s.Insert(PathKey("b"))
	_, _, _ = s.Insert(PathKey("a"))
	require.False(t, s.Move(0, 2))
	require.False(t, s.Move(2, 0))
	require.False(t, s.Move(-1, 0))
	require.Equal(t, []string{"a", "b"}, names(s))
}

func TestRecordIDsHoldUnderRandomOps(t *testing.T) {
	s := newStore(t, KeyFingerprint)
	rng := rand.New(rand.NewPCG(1, 2))
	var live []string

	for step := 0; step < 500; step++ {
		n := s.Len()
		switch op := rng.IntN(4); {
		case op == 0 || n == 0:
			name := fmt.Sprintf("doc-%d", step)
			var key Fingerprint
			key[0], key[1] = byte(step), byte(step>>8)
			_, ok, err := s.Insert(FingerprintKey(key, name))
			require.NoError(t, err)
			require.True(t, ok)
			live = append([]string{name}, live...)
		case op == 1:
			i := rng.IntN(n)
			require.True(t, s.Delete(i))
			live = append(live[:i], live[i+1:]...)
		case op == 2:
			from, to := rng.IntN(n), rng.IntN(n)
			require.True(t, s.Move(from, to))
			v := live[from]
			live = append(live[:from], live[from+1:]...)
			live = append(live[:to], append([]string{v}, live[to:]...)...)
		default:
			i := rng.IntN(n)
			_, ok := s.Open(i)
			require.True(t, ok)
			v := live[i]
			live = append([]string{v}, append(live[:i:i], live[i+1:]...)...)
		}
		requireIDs(t, s)
		require.Equal(t, live, names(s), "step %d", step)
	}
}

func TestItemFollowsSlot(t *testing.T) {
	s := newStore(t, KeyPath)
	first, _, _ := s.Insert(PathKey("a"))
	_, _, _ = s.Insert(PathKey("b"))
	require.Equal(t, "b", first.DisplayName(), "views address slots, not records")

	s.DeleteAll()
	require.False(t, first.Valid())
	require.Equal(t, "", first.DisplayName())
	require.Equal(t, int32(0), first.ID())
	require.Nil(t, first.Marks())
	require.False(t, first.AddMark(1))
	require.False(t, first.SetPosition(5))
	require.False(t, Item{}.Valid())
}

func TestItemFields(t *testing.T) {
	s := newStore(t, KeyFingerprint)
	it, _, err := s.Insert(FingerprintKey(fp(0x5A), "книга.txt"))
	require.NoError(t, err)

	require.Equal(t, fp(0x5A), it.Fingerprint())
	require.Equal(t, FingerprintKey(fp(0x5A), "книга.txt"), it.Key())
	require.Zero(t, it.Position())
	require.True(t, it.SetPosition(1<<40))
	require.Equal(t, int64(1<<40), it.Position())

	require.True(t, it.SetDisplayName("renamed.txt"))
	require.Equal(t, "renamed.txt", it.DisplayName())
	require.False(t, it.SetDisplayName(strings.Repeat("x", format.MaxPath)))

	ps := newStore(t, KeyPath)
	pit, _, _ := ps.Insert(PathKey("/books/a.txt"))
	require.Equal(t, PathKey("/books/a.txt"), pit.Key())
	require.True(t, pit.Fingerprint().IsZero())
}

func TestMarks(t *testing.T) {
	s := newStore(t, KeyPath)
	it, _, _ := s.Insert(PathKey("a"))

	require.True(t, it.AddMark(100))
	require.True(t, it.AddMark(50))
	require.False(t, it.AddMark(100), "duplicate value")
	require.Equal(t, []int32{100, 50}, it.Marks())

	for v := int32(1); it.MarkCount() < format.MaxMarks; v++ {
		require.True(t, it.AddMark(v))
	}
	require.False(t, it.AddMark(-1), "list full")
	require.Equal(t, format.MaxMarks, it.MarkCount())

	before := it.Marks()
	require.False(t, it.RemoveMark(format.MaxMarks))
	require.False(t, it.RemoveMark(-1))
	require.Equal(t, before, it.Marks())

	require.True(t, it.RemoveMark(0))
	require.Equal(t, before[1:], it.Marks())
	last := format.RecMarksOffset + (format.MaxMarks-1)*format.MarkSize
	require.Equal(t, []byte{0, 0, 0, 0}, s.record(0)[last:last+format.MarkSize], "vacated slot zeroed")
}

func TestRemoveMarkEmpty(t *testing.T) {
	s := newStore(t, KeyPath)
	it, _, _ := s.Insert(PathKey("a"))
	require.False(t, it.RemoveMark(0))
	require.True(t, it.AddMark(3))
	require.True(t, it.RemoveMark(0))
	require.Empty(t, it.Marks())
	require.False(t, it.RemoveMark(0))
}

func TestItemsSnapshot(t *testing.T) {
	s := newStore(t, KeyFingerprint)
	_, _, _ = s.Insert(FingerprintKey(fp(1), "one"))
	two, _, _ := s.Insert(FingerprintKey(fp(2), "two"))
	two.AddMark(9)

	entries := s.Items()
	require.Len(t, entries, 2)
	require.Equal(t, "two", entries[0].Name)
	require.Equal(t, []int32{9}, entries[0].Marks)
	require.Equal(t, fp(2).String(), entries[0].Fingerprint)
	require.Equal(t, 1, entries[1].Index)
}
