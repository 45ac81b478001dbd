package pqueue_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpath/pqueue"
)

type entry = pqueue.Entry[string, int]

// QueueSuite exercises the public queue API.
type QueueSuite struct {
	suite.Suite
}

func (s *QueueSuite) seed(entries ...entry) *pqueue.Queue[string, int] {
	q, err := pqueue.New(entries...)
	require.NoError(s.T(), err)
	return q
}

// TestContains checks membership before and after a pop.
func (s *QueueSuite) TestContains() {
	q := s.seed(entry{5, "E"}, entry{1, "A"}, entry{4, "D"})
	s.True(q.Contains("A"))
	s.False(q.Contains("F"))

	_, err := q.PopMin()
	s.Require().NoError(err)
	s.False(q.Contains("A"))

	empty := s.seed()
	s.False(empty.Contains("A"))
}

// TestFindMin checks that peeking is idempotent and fails on empty queues.
func (s *QueueSuite) TestFindMin() {
	q := s.seed(entry{5, "E"}, entry{1, "A"}, entry{4, "D"})

	first, err := q.FindMin()
	s.Require().NoError(err)
	second, err := q.FindMin()
	s.Require().NoError(err)
	s.Equal(entry{1, "A"}, first)
	s.Equal(first, second)
	s.Equal(3, q.Len())

	_, _ = q.PopMin()
	top, err := q.FindMin()
	s.Require().NoError(err)
	s.Equal(entry{4, "D"}, top)

	_, err = s.seed().FindMin()
	s.ErrorIs(err, pqueue.ErrEmptyQueue)
}

// TestPopMin_Ascending drains a seeded queue in priority order.
func (s *QueueSuite) TestPopMin_Ascending() {
	q := s.seed(entry{5, "e"}, entry{1, "a"}, entry{4, "d"}, entry{2, "b"}, entry{3, "c"})

	var got []string
	for q.Len() > 0 {
		e, err := q.PopMin()
		s.Require().NoError(err)
		got = append(got, e.Item)
	}
	s.Equal([]string{"a", "b", "c", "d", "e"}, got)

	_, err := q.PopMin()
	s.ErrorIs(err, pqueue.ErrEmptyQueue)
}

// TestInsert covers new minimums and duplicate rejection.
func (s *QueueSuite) TestInsert() {
	q := s.seed(entry{5, "E"}, entry{2, "B"}, entry{4, "D"})
	s.Require().NoError(q.Insert("C", 3))

	top, _ := q.FindMin()
	s.Equal(entry{2, "B"}, top)

	s.Require().NoError(q.Insert("A", 1))
	top, _ = q.FindMin()
	s.Equal(entry{1, "A"}, top)

	err := q.Insert("A", 6)
	s.ErrorIs(err, pqueue.ErrDuplicateItem)
	p, ok := q.Priority("A")
	s.True(ok)
	s.Equal(1, p, "failed insert must not touch the existing entry")
}

// TestDecreaseKey covers the happy path and both rejections.
func (s *QueueSuite) TestDecreaseKey() {
	q := s.seed(entry{5, "E"}, entry{2, "B"}, entry{4, "D"})
	s.Require().NoError(q.DecreaseKey("D", 1))

	top, err := q.PopMin()
	s.Require().NoError(err)
	s.Equal(entry{1, "D"}, top)

	s.ErrorIs(q.DecreaseKey("A", 3), pqueue.ErrItemNotFound)
	s.ErrorIs(q.DecreaseKey("E", 7), pqueue.ErrInvalidDecrease)
	s.ErrorIs(q.DecreaseKey("E", 5), pqueue.ErrInvalidDecrease)
}

// TestNew_DuplicateSeed rejects a seed that repeats an item.
func (s *QueueSuite) TestNew_DuplicateSeed() {
	_, err := pqueue.New(entry{1, "A"}, entry{2, "A"})
	s.ErrorIs(err, pqueue.ErrDuplicateItem)
}

// TestTies keeps equal priorities and still drains every item.
func (s *QueueSuite) TestTies() {
	q := s.seed(entry{1, "x"}, entry{1, "y"}, entry{1, "z"}, entry{0, "w"})
	var got []string
	for q.Len() > 0 {
		e, _ := q.PopMin()
		got = append(got, e.Item)
	}
	s.Equal("w", got[0])
	rest := append([]string(nil), got[1:]...)
	sort.Strings(rest)
	s.Equal([]string{"x", "y", "z"}, rest)
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

// TestFloatPriorities drains a queue keyed by float64, including +Inf entries.
func TestFloatPriorities(t *testing.T) {
	inf := math.Inf(1)
	q, err := pqueue.New(
		pqueue.Entry[int, float64]{Priority: inf, Item: 1},
		pqueue.Entry[int, float64]{Priority: 0, Item: 0},
		pqueue.Entry[int, float64]{Priority: inf, Item: 2},
	)
	require.NoError(t, err)
	require.NoError(t, q.DecreaseKey(2, 2.5))
	require.NoError(t, q.DecreaseKey(1, 3.5))

	want := []int{0, 2, 1}
	for _, w := range want {
		e, err := q.PopMin()
		require.NoError(t, err)
		require.Equal(t, w, e.Item)
	}
}
