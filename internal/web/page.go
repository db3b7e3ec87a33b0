package web

import "html/template"

var indexPage = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>acap</title>
<style>
body { font-family: monospace; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; background: #111; color: #ddd; }
h1 { font-size: 1.2rem; color: #7cc; }
#log { min-height: 20rem; white-space: pre-wrap; }
.input { color: #7cf; }
.result { color: #8d8; }
.error { color: #f77; }
.notice { color: #999; }
form { display: flex; gap: .5rem; margin-top: 1rem; }
input[type=text] { flex: 1; font: inherit; background: #222; color: #ddd; border: 1px solid #444; padding: .4rem; }
button { font: inherit; background: #333; color: #ddd; border: 1px solid #555; padding: .4rem .8rem; }
</style>
</head>
<body>
<h1>acap &mdash; a calculator for astronomers and physicists</h1>
<p class="notice">Try: <code>M = 1.4 M_sun, R = 10 km, sqrt(2 G M / R) in km/s</code></p>
<div id="log"></div>
<form id="form">
<input type="text" id="input" autocomplete="off" autofocus>
<button type="submit">=</button>
</form>
<script>
const log = document.getElementById('log');
const input = document.getElementById('input');
let count = 1;

function line(text, cls) {
  const div = document.createElement('div');
  div.textContent = text;
  div.className = cls;
  log.appendChild(div);
  window.scrollTo(0, document.body.scrollHeight);
}

document.getElementById('form').addEventListener('submit', async (ev) => {
  ev.preventDefault();
  const value = input.value.trim();
  if (!value) return;
  input.value = '';
  line('Input[' + count + ']: ' + value, 'input');

  const res = await fetch('/api/calculate', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({input: value}),
  });
  const data = await res.json();

  if (data.notice) { line(data.notice, 'notice'); return; }
  if (data.error) { line(data.error, 'error'); return; }
  if (data.parsed) line('  ' + data.parsed, 'notice');
  if (data.si) line('  = ' + data.si + '  (SI)', 'result');
  if (data.cgs) line('  = ' + data.cgs + '  (CGS)', 'result');
  if (data.converted) line('  = ' + data.converted, 'result');
  count++;
});
</script>
</body>
</html>
`))
