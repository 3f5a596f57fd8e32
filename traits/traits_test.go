package traits

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAndOverride(t *testing.T) {
	assert.Equal(t, "Hello, I'm Tom", english{baseGreeter{"Tom"}}.Greet())
	assert.Equal(t, "你好，我是 小明", chinese{baseGreeter{"小明"}}.Greet())
}

func TestBiggest(t *testing.T) {
	assert.Equal(t, Rect{2, 5}, Biggest([]Rect{{1, 1}, {2, 5}, {3, 3}}))
}

func TestVec2(t *testing.T) {
	a, b := Vec2{1, 2}, Vec2{3, 4}
	assert.Equal(t, Vec2{4, 6}, a.Add(b))
	assert.Equal(t, Vec2{2, 2}, b.Sub(a))
	assert.Equal(t, 11.0, a.Dot(b))

	vs := byLength{{3, 4}, {1, 0}, {0, 2}}
	sort.Sort(vs)
	assert.Equal(t, byLength{{1, 0}, {0, 2}, {3, 4}}, vs)
}

func TestHumanFly(t *testing.T) {
	h := Human{}
	assert.Equal(t, "*挥动双臂*", h.Fly())
	assert.Equal(t, "飞起来了！", h.Wizard.Fly())
}

func TestCanvasRender(t *testing.T) {
	var c Canvas
	c.Add(drawRect{Rect{3, 4}})
	c.Add(Triangle{6, 2})
	assert.Equal(t, []string{
		"▭ 3x4 (面积 12.00)",
		"△ 底=6 高=2 (面积 6.00)",
	}, c.Render())
}

func TestWrapperAndOutline(t *testing.T) {
	assert.Equal(t, "[a, b]", Wrapper{"a", "b"}.String())
	assert.Contains(t, Label{"hi"}.Outline(), "* hi *")
}
