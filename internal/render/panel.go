// Package render turns lookup results into panel HTML and terminal text.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/heartmarshall/vocab-helper/internal/domain"
)

// Element ids shared with the injected panel script.
const (
	PanelID   = "vocab-helper-panel"
	CloseID   = "vocab-helper-close"
	ContentID = "vocab-helper-content"
)

// Messages shown for absent fields.
const (
	MeaningNotFound       = "Meaning not found."
	PronunciationNotFound = "Pronunciation not found."
)

var panelTmpl = template.Must(template.New("panel").Parse(`
{{- define "header" -}}
<div id="vocab-helper-header"><h3>Vocab Helper</h3><button id="` + CloseID + `">&times;</button></div>
{{- end -}}

{{- define "pending" -}}
{{template "header"}}<div id="` + ContentID + `"><p><strong>Word:</strong> {{.Word}}</p><p>Searching for {{.Language}} meaning...</p></div>
{{- end -}}

{{- define "result" -}}
{{template "header"}}<div id="` + ContentID + `"><p><strong>Word:</strong> {{.Result.Word}}</p>
{{- with .Result.Pronunciation}}
{{- if .Transcription}}<p class="transcription">{{.Transcription}}{{with .Region}} <span class="region">({{.}})</span>{{end}}</p>{{end}}
{{- if .AudioURL}}<audio controls preload="none" src="{{.AudioURL}}"></audio>{{end}}
{{- end}}
{{- if not .Result.HasAudio}}<p class="not-found">` + PronunciationNotFound + `</p>{{end}}<hr>
{{- range .Result.Meanings}}<div class="pos-header">{{.PartOfSpeech}}:</div><ol class="meaning-list">{{range .Glosses}}<li>{{.}}</li>{{end}}</ol>{{end}}
{{- if not .Result.HasMeanings}}<p class="not-found">` + MeaningNotFound + `</p>{{end}}</div>
{{- end -}}
`))

// PanelCSS styles the injected panel.
const PanelCSS = `
#vocab-helper-panel { position: fixed; top: 20px; right: 20px; width: 320px; background: #fff; border: 1px solid #ddd; border-radius: 8px; box-shadow: 0 4px 12px rgba(0,0,0,.15); z-index: 9999; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; overflow: hidden; display: none; }
#vocab-helper-header { display: flex; justify-content: space-between; align-items: center; padding: 12px 16px; background: #f7f7f7; border-bottom: 1px solid #e0e0e0; }
#vocab-helper-header h3 { margin: 0; font-size: 16px; font-weight: 600; }
#vocab-helper-close { background: none; border: none; font-size: 22px; cursor: pointer; color: #888; }
#vocab-helper-content { padding: 16px; max-height: 75vh; overflow-y: auto; }
#vocab-helper-content p { margin: 0 0 12px 0; font-size: 14px; line-height: 1.5; color: #555; }
#vocab-helper-content audio { width: 100%; margin-bottom: 12px; }
.pos-header { font-weight: bold; text-transform: capitalize; margin-bottom: 4px; font-size: 15px; color: #333; }
.meaning-list { margin: 0 0 10px 20px; padding: 0; list-style-type: decimal; }
`

// PendingHTML renders the panel body shown while a lookup is in flight.
// language is the display name of the gloss language.
func PendingHTML(word, language string) (string, error) {
	return execute("pending", struct {
		Word     string
		Language string
	}{Word: word, Language: language})
}

// ResultHTML renders the panel body for a settled lookup.
func ResultHTML(result *domain.LookupResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("render: nil result")
	}
	return execute("result", struct{ Result *domain.LookupResult }{Result: result})
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := panelTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render: %s: %w", name, err)
	}
	return buf.String(), nil
}
