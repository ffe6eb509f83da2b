// ════════════════════════════════════════════════════════════════════════════════════════════════
// Generalized Taxicab Search Engine - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Generalized Taxicab Search Engine
// Component: Main Entry Point & Run Orchestration
//
// Description:
//   Finds all quadruples (a,b,c,d) with a^N + b^N = c^N + d^N inside the configured bound
//   and writes them to the output path given on the command line.
//
// Architecture:
//   - Phase 1: Power table precomputation and frontier-driven search
//   - Phase 2: Round-trip verification of the emitted file
//   - Phase 3: SQLite archival and JSON run manifest
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"
	"time"

	"taxicab/constants"
	"taxicab/debug"
	"taxicab/pairsearch"
	"taxicab/powtable"
	"taxicab/results"
	"taxicab/utils"
)

func main() {
	os.Exit(run(os.Args))
}

// run executes the whole lifecycle and returns the process exit code.
// Usage and output-path failures exit 1 before any search work begins; the
// post-search artifact phases log failures but do not disturb the exit code,
// since the results file itself is already complete on disk.
func run(args []string) int {
	if len(args) < 2 {
		utils.PrintInfo("Usage: " + args[0] + " [OUTPUT PATH]\n")
		return 1
	}
	outputPath := args[1]

	outfile, err := os.Create(outputPath)
	if err != nil {
		utils.PrintWarning("Could not open output file: " + outputPath + "\n")
		return 1
	}

	// PHASE 1: Search
	if constants.MaxHits > 0 {
		utils.PrintInfo("Searching for up to " + utils.Itoa(constants.MaxHits) +
			" solutions with N = " + utils.Itoa(constants.Exponent) +
			" and an upper bound of " + utils.Itoa(constants.Bound) + "\n")
	} else {
		utils.PrintInfo("Searching for solutions with N = " + utils.Itoa(constants.Exponent) +
			" and an upper bound of " + utils.Itoa(constants.Bound) + "\n")
	}

	utils.PrintInfo("Precomputing powers...\n")
	table, err := powtable.Precompute(constants.Exponent, constants.Bound)
	if err != nil {
		debug.DropError("POWTABLE", err)
		outfile.Close()
		return 1
	}

	sink := results.NewBuffer(outfile, constants.ResultBufferSize, constants.ResultBufferSlack)
	meter := pairsearch.NewMeter(constants.MaxHits, constants.UpdateInterval, os.Stdout)

	utils.PrintInfo("Initializing heap...\n")
	utils.PrintInfo("Beginning search loop...\n")
	meter.Start()

	start := time.Now()
	outcome, hits := pairsearch.Search(table, constants.Bound, constants.MaxHits, sink, meter)
	elapsed := time.Since(start)
	meter.Finish()

	if err := sink.Close(); err != nil {
		debug.DropError("SINK", err)
		outfile.Close()
		return 1
	}
	if err := outfile.Close(); err != nil {
		debug.DropError("SINK", err)
		return 1
	}

	debug.DropMessage("SEARCH", utils.Itoa(hits)+" hits ("+outcome.String()+")")

	// PHASE 2: Round-trip verification of the finished file
	valid, invalid, err := results.VerifyFile(constants.Exponent, outputPath)
	if err != nil {
		debug.DropError("VERIFY", err)
	} else if invalid > 0 {
		debug.DropMessage("VERIFY", utils.Itoa(invalid)+" invalid lines of "+utils.Itoa(valid+invalid))
	} else {
		debug.DropMessage("VERIFY", utils.Itoa(valid)+" lines valid")
	}

	// PHASE 3: Archival artifacts
	archived, err := results.ArchiveFile(constants.ArchivePath, outputPath)
	if err != nil {
		debug.DropError("ARCHIVE", err)
	} else {
		debug.DropMessage("ARCHIVE", utils.Itoa(archived)+" solutions archived")
	}

	digest, err := results.DigestFile(outputPath)
	if err != nil {
		debug.DropError("MANIFEST", err)
		return 0
	}
	manifest := results.Manifest{
		Exponent:   constants.Exponent,
		Bound:      constants.Bound,
		MaxHits:    constants.MaxHits,
		Hits:       hits,
		Outcome:    outcome.String(),
		OutputPath: outputPath,
		OutputSHA3: digest,
		DurationMS: elapsed.Milliseconds(),
	}
	if err := results.WriteManifest(constants.ManifestPath, manifest); err != nil {
		debug.DropError("MANIFEST", err)
	}

	return 0
}
