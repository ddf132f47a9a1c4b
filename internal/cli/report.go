package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/valorsim/valorsim/internal/models"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func printPlayerTable(w io.Writer, players []*models.Player) {
	table := newTable(w)
	table.Header("NAME", "AGE", "REGION", "ROLE", "AGENT", "AIM", "GS", "MOV", "UTIL", "COMM", "CLUTCH", "SALARY")
	for _, p := range players {
		table.Append(
			p.Name(),
			strconv.Itoa(p.Age),
			p.Region,
			string(p.PrimaryRole),
			p.PrimaryAgent(),
			fmt.Sprintf("%.0f", p.CoreStats.Aim),
			fmt.Sprintf("%.0f", p.CoreStats.GameSense),
			fmt.Sprintf("%.0f", p.CoreStats.Movement),
			fmt.Sprintf("%.0f", p.CoreStats.UtilityUsage),
			fmt.Sprintf("%.0f", p.CoreStats.Communication),
			fmt.Sprintf("%.0f", p.CoreStats.Clutch),
			fmt.Sprintf("$%.0f", p.Salary),
		)
	}
	table.Render()
}

func printPerformanceTable(w io.Writer, result *models.MatchResult) {
	perfs := make([]*models.PlayerPerformance, 0, len(result.Performances))
	for _, perf := range result.Performances {
		perfs = append(perfs, perf)
	}
	sort.Slice(perfs, func(i, j int) bool {
		if perfs[i].Team != perfs[j].Team {
			return perfs[i].Team < perfs[j].Team
		}
		return perfs[i].Kills > perfs[j].Kills
	})

	table := newTable(w)
	table.Header("NAME", "TEAM", "AGENT", "K", "D", "FB", "CLUTCH", "PLANTS", "SPENT")
	for _, perf := range perfs {
		table.Append(
			perf.PlayerName,
			perf.Team,
			result.PlayerAgents[perf.PlayerID],
			strconv.Itoa(perf.Kills),
			strconv.Itoa(perf.Deaths),
			strconv.Itoa(perf.FirstBloods),
			strconv.Itoa(perf.Clutches),
			strconv.Itoa(perf.Plants),
			strconv.Itoa(perf.MoneySpent),
		)
	}
	table.Render()
}

func printEconomyTable(w io.Writer, logs []models.EconomyLog) {
	table := newTable(w)
	table.Header("ROUND", "A START", "A SPEND", "A END", "B START", "B SPEND", "B END", "WINNER", "SPIKE", "NOTES")
	for _, log := range logs {
		spike := ""
		if log.SpikePlanted {
			spike = "planted"
		}
		table.Append(
			strconv.Itoa(log.RoundNumber),
			strconv.Itoa(log.TeamAStart),
			strconv.Itoa(log.TeamASpend),
			strconv.Itoa(log.TeamAEnd),
			strconv.Itoa(log.TeamBStart),
			strconv.Itoa(log.TeamBSpend),
			strconv.Itoa(log.TeamBEnd),
			log.Winner,
			spike,
			log.NotesText(),
		)
	}
	table.Render()
}
