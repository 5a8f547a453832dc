package server

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>paperdeck</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 4rem auto; }
fieldset { border: 1px solid #ccc; padding: 1.5rem; }
</style>
</head>
<body>
<h1>paperdeck</h1>
<p>Upload a research paper (PDF, HTML or plain text) and get back a
per-section summary deck, an audio narration, a short summary clip, or
a graphical abstract of the key concepts.</p>
<form action="/papers" method="post" enctype="multipart/form-data">
<fieldset>
<p><input type="file" name="paper" accept=".pdf,.html,.htm,.txt" required></p>
<p>
<label><input type="radio" name="format" value="deck" checked> Slide deck (PDF)</label>
<label><input type="radio" name="format" value="audio"> Narration (MP3)</label>
<label><input type="radio" name="format" value="video"> Summary clip (MP4)</label>
<label><input type="radio" name="format" value="abstract"> Graphical abstract (SVG)</label>
</p>
<p><button type="submit">Transform</button></p>
</fieldset>
</form>
</body>
</html>
`
