package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"pitchview/internal/catalog"
)

// minutesCeiling caps the minutes slider when the dataset is empty. A full
// league season is 38 matches.
const minutesCeiling = 38 * 90

type dashboardData struct {
	Season            string
	Metrics           []string
	Positions         []string
	Squads            []string
	DefaultPositions  []string
	DefaultMinMinutes int
	DefaultTopN       int
	DefaultScatterX   string
	DefaultScatterY   string
	DefaultRanking    string
	SquadSortMetric   string
	MinutesMax        int
}

// Dashboard renders the analytics page. Selector options and defaults are
// filled server-side; chart and table data comes from the JSON API.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary := h.players.Summary()
	data := dashboardData{
		Season:            h.cfg.Season,
		Metrics:           catalog.Labels(),
		Positions:         h.players.Positions(),
		Squads:            h.squads.Squads().Squads,
		DefaultPositions:  h.cfg.DefaultPositions,
		DefaultMinMinutes: h.cfg.DefaultMinMinutes,
		DefaultTopN:       h.cfg.DefaultTopN,
		DefaultScatterX:   catalog.DefaultScatterX,
		DefaultScatterY:   catalog.DefaultScatterY,
		DefaultRanking:    catalog.DefaultRanking,
		SquadSortMetric:   h.squads.DefaultSort(),
		MinutesMax:        summary.MaxMinutes,
	}
	if data.MinutesMax == 0 {
		data.MinutesMax = minutesCeiling
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil && h.logger != nil {
		h.logger.Error("failed to render dashboard", "err", err)
	}
}

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"contains": func(list []string, v string) bool {
		for _, item := range list {
			if item == v {
				return true
			}
		}
		return false
	},
	"metricOptions": func(labels []string, selected string) template.HTML {
		var b strings.Builder
		for _, label := range labels {
			b.WriteString("<option")
			if label == selected {
				b.WriteString(" selected")
			}
			b.WriteString(">")
			b.WriteString(template.HTMLEscapeString(label))
			b.WriteString("</option>")
		}
		return template.HTML(b.String())
	},
}).Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <title>PitchView</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            min-height: 100vh;
        }

        .layout {
            display: flex;
            min-height: 100vh;
        }

        .sidebar {
            width: 260px;
            flex-shrink: 0;
            background: #1e293b;
            border-right: 1px solid #334155;
            padding: 1.5rem 1.25rem;
        }

        .sidebar h2 {
            font-size: 0.875rem;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            color: #94a3b8;
            margin-bottom: 1rem;
        }

        .sidebar label {
            display: block;
            font-size: 0.8rem;
            color: #94a3b8;
            margin: 1rem 0 0.35rem;
        }

        select, input[type="number"] {
            width: 100%;
            background: #0f172a;
            color: #e2e8f0;
            border: 1px solid #334155;
            border-radius: 0.375rem;
            padding: 0.4rem 0.5rem;
            font-size: 0.875rem;
        }

        input[type="range"] {
            width: 100%;
            accent-color: #22c55e;
        }

        main {
            flex: 1;
            padding: 1.5rem 2rem;
            max-width: 1200px;
        }

        header h1 {
            font-size: 2rem;
            font-weight: 800;
            background: linear-gradient(135deg, #22c55e 0%, #38bdf8 100%);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }

        .subtitle {
            color: #94a3b8;
            font-size: 0.95rem;
            margin-top: 0.25rem;
        }

        .tabs {
            display: flex;
            gap: 0.5rem;
            margin: 1.5rem 0 1rem;
        }

        .tab {
            background: #1e293b;
            color: #94a3b8;
            border: 1px solid #334155;
            border-radius: 0.5rem;
            padding: 0.5rem 1rem;
            font-size: 0.875rem;
            cursor: pointer;
        }

        .tab.active {
            background: #22c55e;
            border-color: #22c55e;
            color: #052e16;
            font-weight: 600;
        }

        .controls {
            display: flex;
            flex-wrap: wrap;
            gap: 1rem;
            margin: 1rem 0;
        }

        .controls label {
            display: flex;
            flex-direction: column;
            gap: 0.3rem;
            font-size: 0.8rem;
            color: #94a3b8;
            min-width: 180px;
        }

        .card {
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 0.75rem;
            padding: 1rem;
            margin-bottom: 1.25rem;
        }

        .chart-wrap {
            position: relative;
            height: 360px;
        }

        .table-wrap {
            overflow-x: auto;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            font-size: 0.825rem;
            white-space: nowrap;
        }

        th, td {
            text-align: left;
            padding: 0.45rem 0.6rem;
            border-bottom: 1px solid #334155;
        }

        thead th {
            color: #94a3b8;
            text-transform: uppercase;
            font-size: 0.7rem;
            letter-spacing: 0.04em;
        }

        td.lead {
            color: #22c55e;
            font-weight: 600;
        }

        .note {
            color: #94a3b8;
            font-size: 0.8rem;
            margin: 0.5rem 0;
        }

        .message {
            color: #f87171;
            font-size: 0.875rem;
            margin: 0.5rem 0;
        }

        .hidden {
            display: none;
        }
    </style>
</head>
<body>
<div class="layout">
    <aside class="sidebar">
        <h2>Filters</h2>
        <label for="positions">Positions</label>
        <select id="positions" multiple size="5">
            {{range .Positions}}<option value="{{.}}"{{if contains $.DefaultPositions .}} selected{{end}}>{{.}}</option>
            {{end}}
        </select>
        <label for="min-minutes">Minimum minutes: <span id="min-minutes-value">{{.DefaultMinMinutes}}</span></label>
        <input type="range" id="min-minutes" min="0" max="{{.MinutesMax}}" step="30" value="{{.DefaultMinMinutes}}">
        <label for="squad">Squad</label>
        <select id="squad">
            <option value="">All squads</option>
            {{range .Squads}}<option value="{{.}}">{{.}}</option>
            {{end}}
        </select>
    </aside>
    <main>
        <header>
            <h1>PitchView</h1>
            <p class="subtitle">Player season statistics, {{.Season}}</p>
        </header>
        <nav class="tabs">
            <button class="tab active" data-mode="top">Top Performers</button>
            <button class="tab" data-mode="compare">Compare Players</button>
            <button class="tab" data-mode="squad">Analyze Opponent</button>
        </nav>
        <section id="mode-top" class="panel">
            <div class="controls">
                <label>X axis
                    <select id="scatter-x">{{metricOptions .Metrics .DefaultScatterX}}</select>
                </label>
                <label>Y axis
                    <select id="scatter-y">{{metricOptions .Metrics .DefaultScatterY}}</select>
                </label>
            </div>
            <div class="card chart-wrap"><canvas id="scatter-chart"></canvas></div>
            <div class="controls">
                <label>Ranking metric
                    <select id="rank-metric">{{metricOptions .Metrics .DefaultRanking}}</select>
                </label>
                <label>Top
                    <input type="number" id="top-n" min="1" max="50" value="{{.DefaultTopN}}">
                </label>
            </div>
            <div class="card chart-wrap"><canvas id="bar-chart"></canvas></div>
            <div class="card table-wrap"><table id="players-table"></table></div>
        </section>
        <section id="mode-compare" class="panel hidden">
            <div class="controls">
                <label>Player A
                    <select id="compare-a"></select>
                </label>
                <label>Player B
                    <select id="compare-b"></select>
                </label>
            </div>
            <p id="compare-message" class="message hidden"></p>
            <div class="card table-wrap"><table id="compare-table"></table></div>
        </section>
        <section id="mode-squad" class="panel hidden">
            <div class="controls">
                <label>Squad
                    <select id="squad-pick">
                        {{range .Squads}}<option>{{.}}</option>
                        {{end}}
                    </select>
                </label>
                <label>Threat metric
                    <select id="squad-metric">{{metricOptions .Metrics .SquadSortMetric}}</select>
                </label>
            </div>
            <p id="squad-note" class="note"></p>
            <div class="card table-wrap"><table id="squad-table"></table></div>
        </section>
    </main>
</div>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.0/dist/chart.umd.min.js"></script>
<script>
    const $ = (id) => document.getElementById(id);
    let scatterChart = null;
    let barChart = null;
    let mode = 'top';

    function esc(value) {
        const div = document.createElement('div');
        div.textContent = String(value);
        return div.innerHTML;
    }

    function fmt(value) {
        return value === null || value === undefined ? '-' : value.toFixed(2);
    }

    function filterParams() {
        const params = new URLSearchParams();
        const positions = Array.from($('positions').selectedOptions).map(o => o.value);
        if (positions.length > 0) {
            params.set('positions', positions.join(','));
        }
        params.set('minMinutes', $('min-minutes').value);
        if ($('squad').value !== '') {
            params.set('squad', $('squad').value);
        }
        return params;
    }

    async function getJSON(url) {
        const res = await fetch(url);
        if (!res.ok) {
            const body = await res.json().catch(() => ({ }));
            throw new Error(body.error || ('request failed with status ' + res.status));
        }
        return res.json();
    }

    function drawScatter(resp) {
        if (scatterChart) {
            scatterChart.destroy();
        }
        scatterChart = new Chart($('scatter-chart'), {
            type: 'scatter',
            data: {
                datasets: [ {
                    data: resp.points.map(p => ({ x: p.x, y: p.y, name: p.name })),
                    backgroundColor: '#22c55e'
                } ]
            },
            options: {
                maintainAspectRatio: false,
                plugins: {
                    legend: { display: false },
                    tooltip: {
                        callbacks: {
                            label: (item) => item.raw.name + ': ' + item.raw.x + ', ' + item.raw.y
                        }
                    }
                },
                scales: {
                    x: { title: { display: true, text: resp.metricX }, grid: { color: '#334155' } },
                    y: { title: { display: true, text: resp.metricY }, grid: { color: '#334155' } }
                }
            }
        });
    }

    function drawBar(resp) {
        if (barChart) {
            barChart.destroy();
        }
        barChart = new Chart($('bar-chart'), {
            type: 'bar',
            data: {
                labels: resp.entries.map(e => e.name),
                datasets: [ {
                    label: resp.metric,
                    data: resp.entries.map(e => e.value),
                    backgroundColor: '#38bdf8'
                } ]
            },
            options: {
                indexAxis: 'y',
                maintainAspectRatio: false,
                plugins: {
                    legend: { display: false }
                },
                scales: {
                    x: { title: { display: true, text: resp.metric }, grid: { color: '#334155' } },
                    y: { grid: { display: false } }
                }
            }
        });
    }

    function renderProfiles(el, players, emptyMessage) {
        if (players.length === 0) {
            el.innerHTML = '<tbody><tr><td>' + esc(emptyMessage) + '</td></tr></tbody>';
            return;
        }
        const labels = players[0].metrics.map(m => m.label);
        const head = '<tr><th>Name</th><th>Squad</th><th>Pos</th><th>Age</th><th>Min</th>' +
            labels.map(l => '<th>' + esc(l) + '</th>').join('') + '</tr>';
        const body = players.map(p =>
            '<tr><td>' + esc(p.name) + '</td><td>' + esc(p.squad) + '</td><td>' + esc(p.position) +
            '</td><td>' + p.age + '</td><td>' + p.minutes + '</td>' +
            p.metrics.map(m => '<td>' + fmt(m.value) + '</td>').join('') + '</tr>').join('');
        el.innerHTML = '<thead>' + head + '</thead><tbody>' + body + '</tbody>';
    }

    async function loadTop() {
        const base = filterParams();

        const scatterParams = new URLSearchParams(base);
        scatterParams.set('x', $('scatter-x').value);
        scatterParams.set('y', $('scatter-y').value);
        drawScatter(await getJSON('/api/scatter?' + scatterParams));

        const rankParams = new URLSearchParams(base);
        rankParams.set('metric', $('rank-metric').value);
        rankParams.set('topN', $('top-n').value);
        drawBar(await getJSON('/api/rankings?' + rankParams));

        const players = await getJSON('/api/players?' + base);
        renderProfiles($('players-table'), players.players, 'No players match the current filters.');
    }

    function fillSelect(el, names, previous) {
        el.innerHTML = '<option value="">Select a player</option>' +
            names.map(n => '<option' + (n === previous ? ' selected' : '') + '>' + esc(n) + '</option>').join('');
    }

    async function loadCompareOptions() {
        const players = await getJSON('/api/players?' + filterParams());
        const names = players.players.map(p => p.name);
        fillSelect($('compare-a'), names, $('compare-a').value);
        fillSelect($('compare-b'), names, $('compare-b').value);
        await loadCompare();
    }

    function showCompareMessage(text) {
        const message = $('compare-message');
        message.textContent = text;
        message.classList.remove('hidden');
    }

    async function loadCompare() {
        const a = $('compare-a').value;
        const b = $('compare-b').value;
        $('compare-message').classList.add('hidden');
        $('compare-table').innerHTML = '';
        if (a === '' || b === '') {
            return;
        }
        if (a === b) {
            showCompareMessage('Choose two different players.');
            return;
        }
        const params = filterParams();
        params.set('a', a);
        params.set('b', b);
        try {
            drawCompare(await getJSON('/api/compare?' + params));
        } catch (err) {
            showCompareMessage(err.message);
        }
    }

    function drawCompare(cmp) {
        const identity = [
            ['Squad', cmp.a.squad, cmp.b.squad],
            ['Position', cmp.a.position, cmp.b.position],
            ['Age', cmp.a.age, cmp.b.age],
            ['Minutes', cmp.a.minutes, cmp.b.minutes]
        ];
        let body = identity.map(row =>
            '<tr><th>' + esc(row[0]) + '</th><td>' + esc(row[1]) + '</td><td>' + esc(row[2]) + '</td></tr>').join('');
        cmp.a.metrics.forEach((m, i) => {
            const other = cmp.b.metrics[i];
            const aLead = m.value !== null && (other.value === null || m.value > other.value);
            const bLead = other.value !== null && (m.value === null || other.value > m.value);
            body += '<tr><th>' + esc(m.label) + '</th>' +
                '<td' + (aLead ? ' class="lead"' : '') + '>' + fmt(m.value) + '</td>' +
                '<td' + (bLead ? ' class="lead"' : '') + '>' + fmt(other.value) + '</td></tr>';
        });
        $('compare-table').innerHTML =
            '<thead><tr><th></th><th>' + esc(cmp.a.name) + '</th><th>' + esc(cmp.b.name) + '</th></tr></thead>' +
            '<tbody>' + body + '</tbody>';
    }

    async function loadSquad() {
        const squad = $('squad-pick').value;
        if (squad === '') {
            return;
        }
        const metric = $('squad-metric').value;
        const overview = await getJSON('/api/squads/' + encodeURIComponent(squad) + '?metric=' + encodeURIComponent(metric));
        $('squad-note').textContent = overview.squad + ', sorted by ' + overview.metric;
        renderProfiles($('squad-table'), overview.players, 'No players found for this squad.');
    }

    function showError(err) {
        console.error(err);
    }

    function refresh() {
        if (mode === 'top') {
            loadTop().catch(showError);
        }
        if (mode === 'compare') {
            loadCompareOptions().catch(showError);
        }
        if (mode === 'squad') {
            loadSquad().catch(showError);
        }
    }

    function setMode(next) {
        mode = next;
        document.querySelectorAll('.tab').forEach(tab => {
            tab.classList.toggle('active', tab.dataset.mode === next);
        });
        $('mode-top').classList.toggle('hidden', next !== 'top');
        $('mode-compare').classList.toggle('hidden', next !== 'compare');
        $('mode-squad').classList.toggle('hidden', next !== 'squad');
        refresh();
    }

    window.addEventListener('DOMContentLoaded', () => {
        document.querySelectorAll('.tab').forEach(tab => {
            tab.addEventListener('click', () => setMode(tab.dataset.mode));
        });
        ['positions', 'min-minutes', 'squad'].forEach(id => {
            $(id).addEventListener('change', refresh);
        });
        $('min-minutes').addEventListener('input', () => {
            $('min-minutes-value').textContent = $('min-minutes').value;
        });
        ['scatter-x', 'scatter-y', 'rank-metric', 'top-n'].forEach(id => {
            $(id).addEventListener('change', () => loadTop().catch(showError));
        });
        ['compare-a', 'compare-b'].forEach(id => {
            $(id).addEventListener('change', () => loadCompare().catch(showError));
        });
        ['squad-pick', 'squad-metric'].forEach(id => {
            $(id).addEventListener('change', () => loadSquad().catch(showError));
        });
        refresh();
    });
</script>
</body>
</html>
`
