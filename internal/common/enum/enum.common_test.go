package enum

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nalgeon/be"
)

func TestFileKindOf(t *testing.T) {
	be.Equal(t, FileKindOf(MimePNG), IMAGE)
	be.Equal(t, FileKindOf(MimePDF), PDF)
	be.Equal(t, FileKindOf(MimeDOC), WORD)
	be.Equal(t, FileKindOf(MimeDOCX), WORD)
	be.Equal(t, FileKindOf("text/plain"), FILE)
	be.Equal(t, IMAGE.Icon(), "fas fa-image text-primary")
	be.Equal(t, PDF.Icon(), "fas fa-file-pdf text-danger")
}

func TestSeverityClasses(t *testing.T) {
	be.Equal(t, ERROR.Class(), "alert-danger")
	be.Equal(t, AlertSeverityEnum("odd").Class(), "alert-info")
	be.Equal(t, CounterNone.Class(), "")
	be.Equal(t, CounterWarning.Class(), "text-warning")
}

func TestEnvGinMode(t *testing.T) {
	be.Equal(t, PRODUCTION.GinMode(), gin.ReleaseMode)
	be.Equal(t, DEVELOPMENT.GinMode(), gin.DebugMode)
	be.True(t, !EnvEnum("qa").IsValid())
}
