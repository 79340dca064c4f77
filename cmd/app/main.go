package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/store"
	"github.com/akyairhashvil/studyflow/internal/tui"
	"github.com/akyairhashvil/studyflow/internal/util"
)

func main() {
	// 1. Initialize Database
	dbRoot := util.DataDir(config.AppName)
	util.MustSucceed("create data directory", os.MkdirAll(dbRoot, 0o755))
	dbPath := filepath.Join(dbRoot, config.DBFileName)

	db, err := store.Open(context.Background(), dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer func() { util.LogError("close database", db.Close()) }()

	// 2. Initialize the Main Model
	model := tui.NewAppModel(db)

	// 3. Enable Mouse Support & Start Program
	p := tea.NewProgram(model, tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
