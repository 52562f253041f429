package server

const layoutTemplate = `
{{define "header"}}
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Inequalities Quest</title>
  <style>
    body { font-family: "Inter", system-ui, sans-serif; margin: 0; padding: 0; background: #f6f6fb; color: #0f172a; }
    header { background: #4338ca; color: white; padding: 16px; }
    main { padding: 16px; max-width: 900px; margin: 0 auto; }
    .card { background: white; border-radius: 12px; padding: 16px; box-shadow: 0 8px 20px rgba(0,0,0,0.06); margin-bottom: 16px; }
    .tag { display: inline-block; padding: 4px 10px; border-radius: 12px; background: #eef2ff; color: #4338ca; font-weight: 600; font-size: 12px; margin-right: 6px; }
    .metrics { display: flex; gap: 12px; }
    .metric { background: rgba(255,255,255,0.12); padding: 8px 14px; border-radius: 10px; text-align: center; }
    .metric b { display: block; font-size: 22px; }
    .msg { padding: 12px; border-radius: 10px; margin-bottom: 12px; }
    .msg.good { background: #ecfdf3; border: 1px solid #bbf7d0; }
    .msg.bad { background: #fef2f2; border: 1px solid #fecaca; }
    .msg.info { background: #fff7ed; border: 1px solid #fed7aa; }
    .hintbox { background: #fff7ed; border: 1px solid #fed7aa; border-radius: 10px; padding: 10px 12px; margin: 10px 0; }
    textarea { width: 100%; box-sizing: border-box; border-radius: 10px; border: 1px solid #cbd5e1; padding: 10px; font-size: 16px; font-family: inherit; }
    select { padding: 8px; border-radius: 10px; border: 1px solid #cbd5e1; font-size: 15px; }
    .btn-primary { display: inline-block; padding: 10px 14px; border-radius: 10px; border: none; background: #4338ca; color: white; cursor: pointer; font-size: 15px; }
    .btn-secondary { display: inline-block; padding: 10px 14px; border-radius: 10px; border: 1px solid #cbd5e1; text-decoration: none; color: #0f172a; background: #f8fafc; font-size: 15px; cursor: pointer; }
    .row { display: flex; gap: 10px; align-items: center; flex-wrap: wrap; margin: 10px 0; }
    .plot img { max-width: 100%; border: 1px solid #e2e8f0; border-radius: 10px; }
    .solution { font-family: ui-monospace, monospace; background: #f1f5f9; border-radius: 8px; padding: 8px 10px; }
    nav a { color: white; margin-right: 12px; text-decoration: none; font-weight: 600; }
    .footer { text-align: center; color: #64748b; padding: 12px; font-size: 14px; }
  </style>
</head>
<body>
  <header>
    <div style="display:flex; align-items:center; justify-content: space-between; flex-wrap: wrap; gap: 10px;">
      <div>
        <div style="font-weight: 700; font-size: 20px;">Inequalities Quest</div>
        <div style="opacity: 0.85;">Random inequality missions with number-line feedback</div>
      </div>
      <nav>
        <a href="/">Activity</a>
        <a href="/explore">Explore</a>
      </nav>
    </div>
  </header>
  <main>
{{end}}

{{define "footer"}}
  </main>
  <div class="footer">Inequalities Quest · score and streak live for the current session</div>
</body>
</html>
{{end}}

{{define "activity"}}
  {{template "header"}}
  <div class="card">
    <div style="display:flex; justify-content: space-between; align-items:center; flex-wrap: wrap; gap: 10px;">
      <div>
        <span class="tag">{{.Topic}}</span>
        <span class="tag">{{.ExerciseID}}</span>
      </div>
      <div class="metrics" style="color:#0f172a;">
        <div class="metric" style="background:#eef2ff;"><b>{{.Score}}</b>Score</div>
        <div class="metric" style="background:#eef2ff;"><b>{{.Streak}}</b>Streak</div>
        <div class="metric" style="background:#eef2ff;"><b>{{.BestStreak}}</b>Best</div>
      </div>
    </div>

    <h2 style="margin: 12px 0 6px 0;">Mission: {{.Prompt}}</h2>

    <form action="/next" method="POST" class="row">
      <label for="topic">Topic filter</label>
      <select id="topic" name="topic">
        <option value="any" {{if eq .Selected "any"}}selected{{end}}>all topics</option>
        {{range .Topics}}
          <option value="{{.}}" {{if eq . $.Selected}}selected{{end}}>{{.}}</option>
        {{end}}
      </select>
      <button class="btn-secondary" type="submit">New random exercise</button>
    </form>

    <details>
      <summary>Hint</summary>
      <div class="hintbox">{{.Hint}}</div>
    </details>

    {{if .Message}}
      <div class="msg {{.MessageKind}}" style="margin-top:12px;">{{.Message}}</div>
    {{end}}

    <form action="/submit" method="POST">
      <p style="margin-bottom:4px;"><strong>Write your solution as intervals</strong></p>
      <p style="margin-top:0; color:#64748b; font-size:14px;">Example: (-∞,2] U (5,∞)  or  [-2,3)  or  ∅  or  R</p>
      <textarea name="answer" rows="3" placeholder="Write your solution here...">{{.LastAnswer}}</textarea>
      <div class="row">
        <button class="btn-primary" type="submit">Check</button>
        {{if .Reveal}}
          <a class="btn-secondary" href="/">Hide solution</a>
        {{else}}
          <a class="btn-secondary" href="/?reveal=1">Reveal solution</a>
        {{end}}
        <a class="btn-secondary" href="/export/pdf">Export PDF</a>
        <a class="btn-secondary" href="/export/xlsx">Export history</a>
        <a class="btn-secondary" href="/reset">Restart session</a>
      </div>
    </form>

    {{if .Reveal}}
      <h3 style="margin-bottom:4px;">Correct solution</h3>
      <div class="solution">{{.Solution}}</div>
      {{if .EndpointNotes}}
        <p style="margin-bottom:4px;"><strong>Open/closed endpoints:</strong></p>
        <ul style="margin-top:0;">
          {{range .EndpointNotes}}<li>{{.}}</li>{{end}}
        </ul>
      {{end}}
    {{end}}

    {{if .PlotB64}}
      <h3 style="margin-bottom:6px;">Visualization</h3>
      <div class="plot"><img src="data:image/png;base64,{{.PlotB64}}" alt="number line of the solution set"></div>
    {{end}}
  </div>
  {{template "footer"}}
{{end}}

{{define "explore"}}
  {{template "header"}}
  <div class="card">
    <span class="tag">Explore</span>
    <h2 style="margin: 8px 0;">Free input</h2>
    <p style="color:#64748b;">One inequality per line. Supported shapes: 2x - 3 &lt;= 5, x^2 - 5x + 6 &gt; 0, (x-1)/(x+2) &gt;= 0, |2x+1| &gt; 3.</p>
    <form action="/explore" method="POST">
      <textarea name="inequalities" rows="5">{{.Input}}</textarea>
      <div class="row">
        <button class="btn-primary" type="submit">Solve</button>
      </div>
    </form>
  </div>

  {{range $i, $r := .Results}}
    <div class="card">
      <span class="tag">{{$r.Line}}</span>
      {{if $r.Err}}
        <div class="msg bad" style="margin-top:10px;">{{$r.Err}}</div>
      {{else}}
        <div class="solution" style="margin-top:10px;">{{$r.Solution}}</div>
        <div class="plot" style="margin-top:10px;"><img src="data:image/png;base64,{{$r.PlotB64}}" alt="number line"></div>
      {{end}}
    </div>
  {{end}}

  {{if .Intersection}}
    <div class="card">
      <span class="tag">Common solution (intersection)</span>
      <div class="solution" style="margin-top:10px;">{{.Intersection.Solution}}</div>
      <div class="plot" style="margin-top:10px;"><img src="data:image/png;base64,{{.Intersection.PlotB64}}" alt="number line of the common solution"></div>
    </div>
  {{end}}
  {{template "footer"}}
{{end}}
`
