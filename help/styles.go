package help

import (
	"github.com/ayn2op/stackview"
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(stackview.Styles.PrimitiveBackgroundColor)
	dim := base.Foreground(stackview.Styles.SecondaryTextColor).Dim(true)
	normal := base.Foreground(stackview.Styles.PrimaryTextColor)
	return Styles{
		ShortKeyStyle:       dim,
		ShortDescStyle:      normal,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        dim,
		FullDescStyle:       normal,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
