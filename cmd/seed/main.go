// seed carga los datos iniciales (pedidos y un mapa de cotización) en el almacén configurado,
// o imprime el hash bcrypt para AUTH_PASSWORD_HASH.
//
// Uso:
//
//	go run ./cmd/seed                    # carga initial.json embebido si el almacén está vacío
//	go run ./cmd/seed -file backup.json  # restaura un backup exportado por GET /api/backup
//	go run ./cmd/seed -force             # reemplaza datos existentes
//	go run ./cmd/seed -hash <senha>      # imprime el hash y termina
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Suprimentos-api/internal/application/auth"
	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/application/usecase"
	"github.com/jhoicas/Suprimentos-api/internal/infrastructure/storage"
	"github.com/jhoicas/Suprimentos-api/pkg/config"
	"github.com/jhoicas/Suprimentos-api/pkg/logger"
)

//go:embed initial.json
var initialData []byte

func main() {
	file := flag.String("file", "", "backup JSON a cargar (por defecto los datos iniciales)")
	force := flag.Bool("force", false, "reemplazar datos existentes")
	hash := flag.String("hash", "", "imprimir el hash bcrypt de esta contraseña y salir")
	flag.Parse()

	if *hash != "" {
		h, err := auth.HashPassword(*hash)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	data := initialData
	if *file != "" {
		if data, err = os.ReadFile(*file); err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("leer backup")
		}
	}
	var backup dto.BackupDTO
	if err := json.Unmarshal(data, &backup); err != nil {
		log.Fatal().Err(err).Msg("decodificar backup")
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de documentos")
	}
	defer backend.Close()

	uc := usecase.NewBackupUseCase(backend.Orders, backend.Quotations, backend.Tx)
	if !*force {
		current, err := uc.Export(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("leer datos actuales")
		}
		if len(current.Orders) > 0 || len(current.Quotations) > 0 {
			log.Warn().
				Int("orders", len(current.Orders)).
				Int("quotations", len(current.Quotations)).
				Msg("el almacén ya tiene datos; use -force para reemplazarlos")
			return
		}
	}
	if err := uc.Restore(ctx, backup); err != nil {
		log.Fatal().Err(err).Msg("cargar datos")
	}
	log.Info().
		Int("orders", len(backup.Orders)).
		Int("quotations", len(backup.Quotations)).
		Msg("datos cargados")
}
