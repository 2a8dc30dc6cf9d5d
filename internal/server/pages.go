package server

// landingPage is the operator entry form: single-code preview, download and
// print, plus the batch textarea feeding the multi-code print routes.
const landingPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Barcode Generator</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
fieldset { margin-bottom: 1.5rem; }
input[type=text], textarea { width: 100%; box-sizing: border-box; font-family: monospace; }
textarea { height: 8rem; }
.hint { color: #555; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Barcode Generator</h1>
<form>
<fieldset>
<legend>Single code</legend>
<input type="text" name="data" placeholder="I-MCE-169369/25" maxlength="1024" required>
<p class="hint">Format: (I|C)-SERIES-NUMBER/YY</p>
<button formaction="/barcode/preview" formtarget="_blank">Preview</button>
<button formaction="/barcode/download">Download</button>
<button formaction="/print" formtarget="_blank">Print</button>
</fieldset>
</form>
<form>
<fieldset>
<legend>Batch</legend>
<textarea name="codes" placeholder="One code per line, or comma-separated"></textarea>
<button formaction="/print-batch" formtarget="_blank">Print one per page</button>
<button formaction="/print-grid" formtarget="_blank">Print grid</button>
<button formaction="/print-batch.pdf">PDF sheets</button>
<button formaction="/print-grid.pdf">PDF grid</button>
</fieldset>
</form>
</body>
</html>
`

// printPage renders a Page from the print package. The grid layout flows
// captioned cells on one sheet; the default gives each code its own sheet
// with a forced page break. The page triggers the browser print dialog on
// load.
const printPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Print Barcodes</title>
<style>
body { font-family: sans-serif; margin: 0; }
.sheet { display: flex; flex-direction: column; align-items: center; justify-content: center; height: 100vh; page-break-after: always; }
.sheet img { max-width: 80%; }
.sheet .caption { font-size: 1.2rem; margin-top: 0.5rem; font-family: monospace; }
.grid { display: flex; flex-wrap: wrap; gap: 1rem; padding: 1rem; }
.grid .cell { text-align: center; }
.grid img { width: 14rem; }
.grid .caption { font-size: 0.8rem; font-family: monospace; }
@media print { .grid { gap: 0.5rem; } }
</style>
</head>
<body onload="window.print()">
{{if .IsGrid}}<div class="grid">
{{range .Cells}}<div class="cell"><img src="{{.ImageURL}}" alt="{{.Code}}"><div class="caption">{{.Code}}</div></div>
{{end}}</div>
{{else}}{{range .Cells}}<div class="sheet"><img src="{{.ImageURL}}" alt="{{.Code}}"><div class="caption">{{.Code}}</div></div>
{{end}}{{end}}</body>
</html>
`
