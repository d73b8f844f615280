package web

const pageHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>gasstation</title>
  {{if .ShareDescription}}
  <meta name="description" content="{{.ShareDescription}}">
  <meta property="og:description" content="{{.ShareDescription}}">
  {{end}}
  <style>
    body { font-family: system-ui, sans-serif; margin: 0 auto; padding: 24px; max-width: 560px; box-sizing: border-box; }
    * { box-sizing: border-box; }
    .stack { display: flex; flex-direction: column; gap: 40px; }
    .fields { display: flex; flex-direction: column; gap: 16px; }
    .field label { display: block; font-weight: 500; color: #333; margin-bottom: 4px; font-size: 0.95em; }
    .field .row { display: flex; align-items: center; gap: 8px; }
    .field input { padding: 10px 12px; font-size: 1em; border: 1px solid #ccc; border-radius: 8px; width: 100%; }
    .field input:focus { outline: none; border-color: #1976d2; box-shadow: 0 0 0 2px rgba(25,118,210,0.2); }
    .field.failed input { border-color: #be123c; }
    .field .clear { padding: 4px 10px; background: none; border: none; color: #666; cursor: pointer; font-size: 1.1em; }
    .msg { color: #666; font-size: 0.85em; margin-top: 4px; }
    .field.failed .msg { color: #be123c; }
    .alert { display: flex; align-items: center; gap: 12px; padding: 12px; border-radius: 8px; background: #fecdd3; cursor: pointer; margin-bottom: 20px; }
    .alert .icon { width: 40px; height: 40px; border-radius: 8px; background: rgba(190,18,60,0.2); color: #9f1239; display: flex; align-items: center; justify-content: center; font-weight: 700; }
    .alert .title { color: #9f1239; font-weight: 500; font-size: 0.9em; }
    .alert .subtitle { color: #030712; font-size: 0.9em; }
    h1.result { text-align: center; margin: 0; }
    button[type="submit"] { padding: 12px 20px; font-size: 1em; font-weight: 500; background: #1976d2; color: #fff; border: none; border-radius: 8px; cursor: pointer; }
    button[type="submit"]:hover { background: #1565c0; }
    button[type="submit"]:disabled { background: #9e9e9e; cursor: not-allowed; }
    footer { margin-top: 40px; color: #666; font-size: 0.9em; text-align: center; }
  </style>
</head>
<body>
  {{if .Alert}}
  <div id="alert-length" class="alert" role="alert">
    <div class="icon">!</div>
    <div>
      <div class="title">{{.AlertTitle}}</div>
      <div class="subtitle">{{.AlertSubtitle}}</div>
    </div>
  </div>
  {{end}}

  <form method="POST" action="/calc" class="stack">
    <section class="fields">
      {{template "field" .Supply}}
      {{template "field" .Cost}}
    </section>

    {{if .HasResult}}<h1 id="result" class="result">{{.Result}}</h1>{{end}}

    <button id="find-station" type="submit"{{if .Disabled}} disabled{{end}}>Calculate</button>
  </form>

  <script>
(function() {
  var pattern = /^\d+(,\s*\d+)*$/;
  var button = document.getElementById('find-station');
  var inputs = document.querySelectorAll('.field input');

  function check(input) {
    var v = input.value.trim();
    if (!v) return 'This field is required.';
    if (!pattern.test(v)) return 'Invalid format. Only integer numbers are allowed, separated by commas.';
    return '';
  }
  function updateButton() {
    var blocked = false;
    inputs.forEach(function(i) { if (check(i)) blocked = true; });
    button.disabled = blocked;
  }
  function refresh(input) {
    var field = input.closest('.field');
    var msg = field.querySelector('.msg');
    var err = check(input);
    field.classList.toggle('failed', err !== '');
    msg.textContent = err || msg.getAttribute('data-hint');
    updateButton();
  }
  updateButton();

  inputs.forEach(function(input) {
    input.addEventListener('input', function() {
      var result = document.getElementById('result');
      if (result) result.remove();
      refresh(input);
    });
  });
  document.querySelectorAll('.field .clear').forEach(function(btn) {
    btn.addEventListener('click', function() {
      var input = document.getElementById(btn.getAttribute('data-for'));
      input.value = '';
      input.dispatchEvent(new Event('input'));
      input.focus();
    });
  });
  var alert = document.getElementById('alert-length');
  if (alert) alert.addEventListener('click', function() { alert.remove(); });
})();
  </script>

  <footer>gasstation v{{.Version}}</footer>
</body>
</html>

{{define "field"}}
<div class="field{{if .Failed}} failed{{end}}">
  <label for="{{.ID}}">{{.Label}}</label>
  <div class="row">
    <input id="{{.ID}}" name="{{.Name}}" type="text" value="{{.Value}}" placeholder="{{.Placeholder}}" autocomplete="off">
    <button type="button" class="clear" data-for="{{.ID}}" aria-label="Clear">&times;</button>
  </div>
  <div class="msg" data-hint="{{.Hint}}">{{.Message}}</div>
</div>
{{end}}`
