package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/nordicsun/gooodmorning/internal/models"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@1.9.12"

const baseStyles = `
*{box-sizing:border-box}
body{margin:0;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:var(--theme-background);color:var(--theme-text)}
main{display:flex;flex-direction:column;align-items:center;padding-bottom:40px}
.hotel-bar{width:100%;background:var(--theme-bar);display:flex;align-items:center;padding:24px 20px}
.hotel-bar img{width:50px;height:50px;margin-right:15px}
.hotel-name{font-size:24px;font-weight:600;color:var(--theme-button-text)}
.heading{font-size:36px;font-weight:bold;margin-top:20px;color:var(--theme-heading);text-align:center}
.greeting{font-size:18px;margin-bottom:10px;text-align:center}
.row{display:flex;gap:10px;margin:10px 0;width:85%}
.row input{flex:1;border:2px solid #ccc;border-radius:10px;padding:14px;font-size:20px;background:#fff}
.action{width:120px;background:var(--theme-bar);color:var(--theme-button-text);border:0;border-radius:10px;font-size:18px;font-weight:bold;padding:14px 0}
.result{background:var(--theme-surface);border-radius:10px;padding:20px;width:85%;margin-top:20px;box-shadow:0 2px 4px rgba(0,0,0,.1)}
.result p{font-size:18px;margin:0 0 8px}
.guest-selector{margin-top:20px;display:flex;flex-direction:column;align-items:center}
.counter-row{display:flex;align-items:center;margin:15px 0}
.counter{width:50px;height:50px;border-radius:25px;border:0;background:var(--theme-bar);color:var(--theme-button-text);font-size:32px}
.circle{width:80px;height:80px;border-radius:40px;background:#fff;margin:0 20px;display:flex;justify-content:center;align-items:center;border:2px solid var(--theme-bar);font-size:32px;font-weight:bold;color:var(--theme-heading)}
`

const dismissKeyboardScript = `document.body.addEventListener("dismiss-keyboard",function(){var el=document.activeElement;if(el&&el.blur){el.blur();}});`

// Base renders the page shell around content.
func Base(title string, content templ.Component, theme models.Theme) templ.Component {
	theme = theme.Merge(models.DefaultTheme())

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+`</title>`+
			`<script src="`+htmxScriptURL+`"></script>`+
			`<style>`+getThemeCssVars(theme)+baseStyles+`</style></head><body><main>`); err != nil {
			return err
		}
		if err := hotelBar(theme).Render(ctx, w); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main><script>`+dismissKeyboardScript+`</script></body></html>`)
		return err
	})
}

func hotelBar(theme models.Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="hotel-bar">`+
			`<img src="/static/hotel.svg" alt="">`+
			`<span class="hotel-name">`+templ.EscapeString(theme.HotelName)+`</span></div>`)
		return err
	})
}
