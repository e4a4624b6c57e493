package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type drawCall struct {
	sprite   string
	position int
}

// recordingRenderer is a test double that keeps every request it receives.
type recordingRenderer struct {
	messages []string
	draws    []drawCall
	begins   int
	ends     int
}

func (r *recordingRenderer) DrawMessage(text string) { r.messages = append(r.messages, text) }

func (r *recordingRenderer) Draw(sprite string, position int) {
	r.draws = append(r.draws, drawCall{sprite: sprite, position: position})
}

func (r *recordingRenderer) BeginFrame() { r.begins++ }

func (r *recordingRenderer) EndFrame() { r.ends++ }

func TestCardFlip(t *testing.T) {
	c := NewCard("rocket")
	assert.Equal(t, FaceDown, c.Visibility())

	c.Flip()
	assert.Equal(t, FaceUp, c.Visibility())

	c.Flip()
	assert.Equal(t, FaceDown, c.Visibility())
}

func TestCardMatchedIsFinal(t *testing.T) {
	c := NewCard("rocket")
	c.Flip()
	c.MarkFound()
	assert.Equal(t, Matched, c.Visibility())

	c.Flip()
	assert.Equal(t, Matched, c.Visibility(), "flip must not leave Matched")

	c.MarkFound()
	assert.Equal(t, Matched, c.Visibility())
}

func TestCardMarkFoundFromFaceDown(t *testing.T) {
	c := NewCard("guy")
	c.MarkFound()
	assert.Equal(t, Matched, c.Visibility())
}

func TestCardSameKindAs(t *testing.T) {
	a1, a2 := NewCard("rocket"), NewCard("rocket")
	b := NewCard("potato")

	assert.True(t, a1.SameKindAs(a1))
	assert.True(t, a1.SameKindAs(a2))
	assert.True(t, a2.SameKindAs(a1))
	assert.False(t, a1.SameKindAs(b))
	assert.False(t, b.SameKindAs(a1))

	a1.Flip()
	b.MarkFound()
	assert.True(t, a1.SameKindAs(a2), "visibility does not affect kind")
	assert.False(t, b.SameKindAs(a2))
}

func TestCardRender(t *testing.T) {
	r := &recordingRenderer{}
	c := NewCard("unicorn")

	c.Render(r, 3)
	c.Flip()
	c.Render(r, 3)
	c.MarkFound()
	c.Render(r, 3)

	assert.Equal(t, []drawCall{
		{sprite: BackSprite, position: 3},
		{sprite: "unicorn", position: 3},
		{sprite: "unicorn", position: 3},
	}, r.draws)
	assert.Empty(t, r.messages)
}

func TestVisibilityString(t *testing.T) {
	tests := []struct {
		v        Visibility
		expected string
	}{
		{FaceDown, "face_down"},
		{FaceUp, "face_up"},
		{Matched, "matched"},
		{Visibility(9), "unknown"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.v.String())
	}
}
