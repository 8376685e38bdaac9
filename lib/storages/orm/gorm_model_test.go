package orm

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEqualsEmpty(t *testing.T) {
	t.Parallel()

	p1 := &sqlProject{}
	p2 := &sqlProject{}

	assert.True(t, reflect.DeepEqual(p1, p2))

	p1.Name = "a"
	assert.False(t, reflect.DeepEqual(p1, p2))
}

func TestEqualsSomeFields(t *testing.T) {
	t.Parallel()

	now := time.Now()
	p1 := &sqlProject{
		ID:        "p1",
		Priority:  "P1",
		CreatedAt: now,
	}
	p2 := &sqlProject{
		ID:        "p1",
		Priority:  "P1",
		CreatedAt: now,
	}

	assert.True(t, reflect.DeepEqual(p1, p2))

	p1.Status = "On Hold"
	assert.False(t, reflect.DeepEqual(p1, p2))
}

func TestEqualsData(t *testing.T) {
	t.Parallel()

	p1 := &sqlProject{
		Data: map[string]string{
			"a": "b",
		},
	}
	p2 := &sqlProject{
		Data: map[string]string{
			"a": "b",
		},
	}

	assert.True(t, reflect.DeepEqual(p1, p2))

	p1.Data["a"] = "c"
	assert.False(t, reflect.DeepEqual(p1, p2))
}

func TestEqualsLabels(t *testing.T) {
	t.Parallel()

	t1 := &sqlTicket{
		Labels: []string{"network", "vip"},
	}
	t2 := &sqlTicket{
		Labels: []string{"network", "vip"},
	}

	assert.True(t, reflect.DeepEqual(t1, t2))

	t2.Labels = []string{"network"}
	assert.False(t, reflect.DeepEqual(t1, t2))
}

func TestEqualsClosed(t *testing.T) {
	t.Parallel()

	now := time.Now()
	c1 := now
	c2 := now
	t1 := &sqlTicket{Closed: &c1}
	t2 := &sqlTicket{Closed: &c2}

	assert.True(t, reflect.DeepEqual(t1, t2))

	later := now.Add(time.Hour)
	t2.Closed = &later
	assert.False(t, reflect.DeepEqual(t1, t2))
}
