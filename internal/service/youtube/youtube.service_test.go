package youtube

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestPreview(t *testing.T) {
	embed, ok := Preview("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42")
	be.True(t, ok)
	be.Equal(t, embed.VideoID, "dQw4w9WgXcQ")
	be.Equal(t, embed.URL, "https://www.youtube.com/embed/dQw4w9WgXcQ")
	be.Equal(t, embed.Width, "100%")
	be.Equal(t, embed.Height, 200)

	embed, ok = Preview("https://youtu.be/dQw4w9WgXcQ")
	be.True(t, ok)
	be.Equal(t, embed.VideoID, "dQw4w9WgXcQ")
}

func TestPreviewInvalid(t *testing.T) {
	for _, link := range []string{"", "https://example.com/video", "https://youtu.be/short"} {
		_, ok := Preview(link)
		be.True(t, !ok)
	}
}
