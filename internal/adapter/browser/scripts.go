package browser

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/vocab-helper/internal/config"
	"github.com/heartmarshall/vocab-helper/internal/render"
	"github.com/heartmarshall/vocab-helper/internal/watch"
)

type snapshotResult struct {
	Present  bool   `json:"present"`
	Word     string `json:"word"`
	Revealed bool   `json:"revealed"`
}

func (r snapshotResult) snapshot() watch.Snapshot {
	return watch.Snapshot{Present: r.Present, Word: r.Word, Revealed: r.Revealed}
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s) // marshaling a string cannot fail
	return string(b)
}

func snapshotScript(host config.HostConfig) string {
	return fmt.Sprintf(`(() => {
	const word = document.querySelector(%s);
	const card = document.querySelector(%s);
	if (!word || !card) return {present: false, word: "", revealed: false};
	return {present: true, word: (word.innerText || word.textContent || "").trim(), revealed: card.classList.contains(%s)};
})()`,
		jsString(host.WordSelector),
		jsString(host.CardSelector),
		jsString(host.RevealedClass),
	)
}

func showPanelScript(body string) string {
	return fmt.Sprintf(`(() => {
	let panel = document.getElementById(%[1]s);
	if (!panel) {
		const style = document.createElement("style");
		style.textContent = %[2]s;
		document.head.appendChild(style);
		panel = document.createElement("div");
		panel.id = %[1]s;
		document.body.appendChild(panel);
	}
	panel.innerHTML = %[3]s;
	panel.style.display = "block";
	const close = document.getElementById(%[4]s);
	if (close) close.addEventListener("click", () => { panel.style.display = "none"; });
	return true;
})()`,
		jsString(render.PanelID),
		jsString(render.PanelCSS),
		jsString(body),
		jsString(render.CloseID),
	)
}

func hidePanelScript() string {
	return fmt.Sprintf(`(() => {
	const panel = document.getElementById(%s);
	if (panel) panel.style.display = "none";
	return true;
})()`, jsString(render.PanelID))
}
