// ABOUTME: Embedded filesystem for editor templates and static assets.
// ABOUTME: Exports ContentFS so the server needs no runtime filesystem paths.
package editor

import "embed"

//go:embed templates/*.html templates/partials/*.html static/css/*.css static/js/*.js
var ContentFS embed.FS
