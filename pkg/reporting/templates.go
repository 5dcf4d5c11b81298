/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML template for the Akaylee Learner report. Provides a clean,
modern, and responsive page showing run statistics, the observation table,
and the hypothesis automaton.
*/

package reporting

// reportTemplate is the main HTML template for the learning report
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Akaylee Learner Report</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
        }

        .container {
            max-width: 1100px;
            margin: 0 auto;
            padding: 20px;
        }

        .header {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.2rem;
            margin-bottom: 10px;
            font-weight: 700;
        }

        .header p {
            color: #718096;
        }

        .card {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .card h2 {
            color: #4a5568;
            margin-bottom: 20px;
        }

        .stats {
            display: flex;
            gap: 20px;
            flex-wrap: wrap;
        }

        .stat {
            flex: 1;
            min-width: 140px;
            text-align: center;
            padding: 16px;
            border-radius: 12px;
            background: #f7fafc;
        }

        .stat .value {
            font-size: 1.8rem;
            font-weight: 700;
            color: #4a5568;
        }

        .stat .label {
            color: #718096;
        }

        table {
            border-collapse: collapse;
            width: 100%;
        }

        th, td {
            border: 1px solid #e2e8f0;
            padding: 8px 12px;
            text-align: center;
        }

        th {
            background: #edf2f7;
            color: #4a5568;
        }

        tr.separator td {
            background: #e2e8f0;
            padding: 2px;
        }

        td.accepting {
            background: #c6f6d5;
        }

        td.initial {
            font-weight: 700;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Learner {{.LearnerID}} · generated {{.GeneratedAt.Format "2006-01-02 15:04:05"}} · v{{.Version}}</p>
        </div>

        <div class="card">
            <h2>Run Statistics</h2>
            <div class="stats">
                <div class="stat"><div class="value">{{.Rounds}}</div><div class="label">Rounds</div></div>
                <div class="stat"><div class="value">{{.Refinements}}</div><div class="label">Refinements</div></div>
                <div class="stat"><div class="value">{{.Batches}}</div><div class="label">Oracle Batches</div></div>
                <div class="stat"><div class="value">{{.Queries}}</div><div class="label">Membership Queries</div></div>
                <div class="stat"><div class="value">{{len .States}}</div><div class="label">Hypothesis States</div></div>
            </div>
        </div>

        <div class="card">
            <h2>Observation Table</h2>
            <table id="observation-table">
                <thead>
                    <tr>
                        <th></th>
                        {{range .Suffixes}}<th>{{.}}</th>{{end}}
                    </tr>
                </thead>
                <tbody>
                    {{range .ShortRows}}
                    <tr class="short">
                        <th>{{.Label}}</th>
                        {{range .Cells}}<td>{{.}}</td>{{end}}
                    </tr>
                    {{end}}
                    <tr class="separator"><td colspan="{{len .Suffixes | add1}}"></td></tr>
                    {{range .LongRows}}
                    <tr class="long">
                        <th>{{.Label}}</th>
                        {{range .Cells}}<td>{{.}}</td>{{end}}
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>

        <div class="card">
            <h2>Hypothesis</h2>
            <table id="hypothesis-table">
                <thead>
                    <tr>
                        <th>State</th>
                        <th>Accepting</th>
                        {{range .Symbols}}<th>{{.}}</th>{{end}}
                    </tr>
                </thead>
                <tbody>
                    {{range .States}}
                    <tr>
                        <td{{if .Initial}} class="initial"{{end}}>q{{.ID}}{{if .Initial}} (start){{end}}</td>
                        <td{{if .Accepting}} class="accepting"{{end}}>{{if .Accepting}}yes{{else}}no{{end}}</td>
                        {{range .Targets}}<td>q{{.}}</td>{{end}}
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>
    </div>
</body>
</html>
`
