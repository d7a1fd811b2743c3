// Package mcp exposes the simulator over the Model Context Protocol so
// that agent clients can sweep deck configurations and analyze real
// decklists through stdio tools.
package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/baboonytim/redsim/internal/decklist"
	"github.com/baboonytim/redsim/internal/game"
	"github.com/baboonytim/redsim/internal/sim"
)

// RegisterTools adds all simulation tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(runSweepTool(), handleRunSweep)
	s.AddTool(analyzeDeckTool(), handleAnalyzeDeck)
	s.AddTool(getResultsTool(), handleGetResults)
}

// --- Tool definitions ---

func runSweepTool() mcp.Tool {
	return mcp.NewTool("run_sweep",
		mcp.WithDescription("Run a Monte Carlo sweep over deck configurations. Deck sizes, tutor counts, and "+
			"cycler soul counts may each be a single value or a comma-separated list; the sweep runs every "+
			"combination and returns one summary record per configuration point."),
		mcp.WithString("deck_sizes", mcp.Required(), mcp.Description("Deck sizes to sweep, e.g. '50' or '50,57,64' (each 50-105)")),
		mcp.WithString("tutor_counts", mcp.Description("Tutor counts to sweep, e.g. '0,1,2,3' (default 0)")),
		mcp.WithString("cycler_soul_counts", mcp.Description("Cycler lost soul counts to sweep (default 0)")),
		mcp.WithNumber("n_simulations", mcp.Description("Trials per configuration point (default 5000)")),
		mcp.WithBoolean("going_first", mcp.Description("Opponent goes first and forfeits the turn draw (default false)")),
		mcp.WithBoolean("include_hopper", mcp.Description("Include The Hopper in generated decks (default false)")),
		mcp.WithBoolean("virgin_birth", mcp.Description("Include The Virgin Birth in generated decks (default false)")),
		mcp.WithBoolean("prosperity", mcp.Description("Include the Prosperity lost soul in generated decks (default false)")),
		mcp.WithBoolean("four_drachma_coin", mcp.Description("Include Four Drachma Coin in generated decks (default false)")),
		mcp.WithBoolean("account_for_crowds", mcp.Description("Swap one meek soul for the Crowds lost soul and model its block (default false)")),
		mcp.WithString("cycler_logic", mcp.Description("Cycler give-up policy: 'random' or 'optimized' (default random)")),
		mcp.WithNumber("crowds_ineffectiveness_weight", mcp.Description("Chance the opponent answers the Crowds soul, in [0,1] (default 0.6)")),
		mcp.WithNumber("matthew_fizzle_rate", mcp.Description("Chance the opponent draw engine fizzles regardless of deck, in [0,1] (default 0.15)")),
		mcp.WithNumber("seed", mcp.Description("Base random seed; 0 or omitted picks one at random")),
	)
}

func analyzeDeckTool() mcp.Tool {
	return mcp.NewTool("analyze_deck",
		mcp.WithDescription("Run Monte Carlo trials against one deck from the decklist YAML file instead of a "+
			"generated template. Returns a single summary record."),
		mcp.WithNumber("deck_number", mcp.Required(), mcp.Description("Deck number (1-indexed from the decklist file)")),
		mcp.WithNumber("n_simulations", mcp.Description("Number of trials (default 5000)")),
		mcp.WithBoolean("going_first", mcp.Description("Opponent goes first and forfeits the turn draw (default false)")),
		mcp.WithString("cycler_logic", mcp.Description("Cycler give-up policy: 'random' or 'optimized' (default random)")),
		mcp.WithNumber("crowds_ineffectiveness_weight", mcp.Description("Chance the opponent answers the Crowds soul, in [0,1] (default 0.6)")),
		mcp.WithNumber("matthew_fizzle_rate", mcp.Description("Chance the opponent draw engine fizzles, in [0,1] (default 0.15)")),
		mcp.WithNumber("seed", mcp.Description("Random seed; 0 or omitted picks one at random")),
	)
}

func getResultsTool() mcp.Tool {
	return mcp.NewTool("get_results",
		mcp.WithDescription("Return the summary records from the most recent run_sweep or analyze_deck call. Read-only."),
	)
}

// --- Tool handlers ---

func handleRunSweep(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deckSizes, err := parseIntList(request.GetString("deck_sizes", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("deck_sizes: %v", err), nil
	}
	if len(deckSizes) == 0 {
		return mcp.NewToolResultError("deck_sizes must list at least one size"), nil
	}
	tutorCounts, err := parseIntList(request.GetString("tutor_counts", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("tutor_counts: %v", err), nil
	}
	cyclerCounts, err := parseIntList(request.GetString("cycler_soul_counts", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("cycler_soul_counts: %v", err), nil
	}

	base, errResult := baseConfig(request)
	if errResult != nil {
		return errResult, nil
	}

	sweep := sim.Sweep{
		DeckSizes:        deckSizes,
		TutorCounts:      tutorCounts,
		CyclerSoulCounts: cyclerCounts,
		Base:             base,
	}

	runner := &sim.Runner{}
	records, err := runner.Run(ctx, sweep)
	if err != nil {
		return mcp.NewToolResultErrorf("Sweep failed: %v", err), nil
	}

	activeSession.store("sweep", records)
	return mcp.NewToolResultText(respondJSON(&ToolResponse{Label: "sweep", Records: records})), nil
}

func handleAnalyzeDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if decklistFile == "" || libraryFile == "" {
		return mcp.NewToolResultError("No decklist configured. Start the server with --decks and --library."), nil
	}

	deckNumber := request.GetInt("deck_number", 0)
	if deckNumber < 1 {
		return mcp.NewToolResultError("deck_number must be >= 1"), nil
	}

	lib, err := decklist.LoadLibrary(libraryFile)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load card library: %v", err), nil
	}
	name, cards, err := decklist.DeckByNumber(decklistFile, lib, deckNumber)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load deck: %v", err), nil
	}

	cfg, errResult := baseConfig(request)
	if errResult != nil {
		return errResult, nil
	}

	record, err := sim.AnalyzeDeck(ctx, cfg, cards, nil)
	if err != nil {
		return mcp.NewToolResultErrorf("Analysis failed: %v", err), nil
	}

	label := fmt.Sprintf("deck %d (%s)", deckNumber, name)
	records := []sim.SummaryRecord{record}
	activeSession.store(label, records)
	return mcp.NewToolResultText(respondJSON(&ToolResponse{Label: label, Records: records})), nil
}

func handleGetResults(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label, records := activeSession.results()
	if len(records) == 0 {
		return mcp.NewToolResultError("No results yet. Use run_sweep or analyze_deck first."), nil
	}
	return mcp.NewToolResultText(respondJSON(&ToolResponse{Label: label, Records: records})), nil
}

// baseConfig builds a SimulationConfig from the request's shared parameters.
// The second return value is a ready tool error result when parsing fails.
func baseConfig(request mcp.CallToolRequest) (sim.SimulationConfig, *mcp.CallToolResult) {
	logic, err := game.ParseCyclerLogic(request.GetString("cycler_logic", "random"))
	if err != nil {
		return sim.SimulationConfig{}, mcp.NewToolResultErrorf("cycler_logic: %v", err)
	}

	return sim.SimulationConfig{
		NSimulations:                request.GetInt("n_simulations", 5000),
		GoingFirst:                  request.GetBool("going_first", false),
		IncludeHopper:               request.GetBool("include_hopper", false),
		VirginBirth:                 request.GetBool("virgin_birth", false),
		Prosperity:                  request.GetBool("prosperity", false),
		FourDrachmaCoin:             request.GetBool("four_drachma_coin", false),
		AccountForCrowds:            request.GetBool("account_for_crowds", false),
		CyclerLogic:                 logic,
		CrowdsIneffectivenessWeight: request.GetFloat("crowds_ineffectiveness_weight", 0.6),
		MatthewFizzleRate:           request.GetFloat("matthew_fizzle_rate", 0.15),
		Seed:                        int64(request.GetInt("seed", 0)),
	}, nil
}

// parseIntList parses a comma- or space-separated list of integers.
// An empty string yields an empty list.
func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
