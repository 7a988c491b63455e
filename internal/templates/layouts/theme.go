package layouts

import (
	"fmt"

	"github.com/nordicsun/gooodmorning/internal/models"
)

func getThemeCssVars(theme models.Theme) string {
	theme = theme.Merge(models.DefaultTheme())

	return fmt.Sprintf(
		":root{--theme-bar:%s;--theme-heading:%s;--theme-background:%s;--theme-surface:%s;--theme-text:%s;--theme-button-text:%s;}",
		theme.BarColor,
		theme.HeadingColor,
		theme.BackgroundColor,
		theme.SurfaceColor,
		theme.TextColor,
		theme.ButtonTextColor(),
	)
}
