package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoot(t *testing.T) {
	env := NewEnvironment()
	assert.Empty(t, env.Bindings)
	assert.Nil(t, env.Outer)

	env.Assign("a", Number{Value: 1})
	_, ok := env.Lookup("b")
	assert.False(t, ok)

	v, ok := env.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, Number{Value: 1}, v)

	env.Assign("a", Number{Value: 2})
	v, _ = env.Lookup("a")
	assert.Equal(t, Number{Value: 2}, v)
	assert.Len(t, env.Bindings, 1)
}

func TestChildShadowsParent(t *testing.T) {
	root := NewEnvironment()
	root.Assign("a", Number{Value: 1})
	root.Assign("b", Number{Value: 2})

	env := NewEnclosedEnvironment(root)
	assert.Empty(t, env.Bindings)
	assert.Same(t, root, env.Outer)
	env.Assign("b", Number{Value: 3})

	v, ok := env.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, Number{Value: 1}, v)

	v, _ = env.Lookup("b")
	assert.Equal(t, Number{Value: 3}, v)

	v, _ = root.Lookup("b")
	assert.Equal(t, Number{Value: 2}, v, "assign must not walk to the parent")
}

func TestChildSeesLaterParentBindings(t *testing.T) {
	root := NewEnvironment()
	env := NewEnclosedEnvironment(root)

	_, ok := env.Lookup("late")
	assert.False(t, ok)

	root.Assign("late", TRUE)
	v, ok := env.Lookup("late")
	assert.True(t, ok)
	assert.Equal(t, TRUE, v)
}

func TestRootEnvironmentBuiltins(t *testing.T) {
	plus := &Procedure{Name: "+"}
	env := NewRootEnvironment(map[string]*Procedure{"+": plus})

	v, ok := env.Lookup("+")
	assert.True(t, ok)
	assert.Same(t, plus, v)
}

func TestNames(t *testing.T) {
	root := NewEnvironment()
	root.Assign("b", TRUE)
	root.Assign("a", TRUE)
	env := NewEnclosedEnvironment(root)
	env.Assign("c", TRUE)
	env.Assign("a", FALSE)

	assert.Equal(t, []string{"a", "b", "c"}, env.Names())
}
