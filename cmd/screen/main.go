package main

// Screen a single resume from the command line:
//   go run ./cmd/screen -file resume.pdf -role "Software Developer"

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"screening-backend/internal/bootstrap"
	"screening-backend/internal/screening"
	"screening-backend/internal/shared/config"
)

func main() {
	var (
		file     = flag.String("file", "", "path to the resume PDF")
		role     = flag.String("role", "", "job role to screen against")
		name     = flag.String("name", "", "candidate name (optional)")
		email    = flag.String("email", "", "candidate email (optional)")
		linkedin = flag.String("linkedin", "", "candidate LinkedIn URL (optional)")
		out      = flag.String("out", "", "write the result JSON to this file instead of stdout")
	)
	flag.Parse()

	if *file == "" || *role == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read resume: %v", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	result, err := app.Pipeline.Process(ctx, screening.Submission{
		FileName:          filepath.Base(*file),
		File:              data,
		JobRole:           *role,
		CandidateName:     *name,
		CandidateEmail:    *email,
		CandidateLinkedIn: *linkedin,
	})
	if err != nil {
		log.Fatalf("screening failed: %v", err)
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}

	if *out != "" {
		if err := os.WriteFile(*out, append(payload, '\n'), 0o644); err != nil {
			log.Fatalf("write result: %v", err)
		}
		log.Printf("result written to %s", *out)
		return
	}
	fmt.Println(string(payload))
}
