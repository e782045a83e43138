package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/database"
	"github.com/fittrack/fittrack/internal/repositories"
	"github.com/fittrack/fittrack/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
)

// Exports a user's full workout history to an .xlsx file: one sheet of
// workouts, one sheet of exercises keyed by workout id.
func main() {
	email := flag.String("email", "", "email of the user to export")
	out := flag.String("out", "workouts.xlsx", "output file path")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: export_workouts -email user@example.com [-out workouts.xlsx]")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repositories.NewUserRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)

	user, err := userRepo.GetByEmail(*email)
	if err != nil {
		log.Fatal(err)
	}

	workouts, err := workoutRepo.ListByUser(user.ID)
	if err != nil {
		log.Fatal(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const workoutSheet = "Workouts"
	const exerciseSheet = "Exercises"

	f.SetSheetName(f.GetSheetName(0), workoutSheet)
	if _, err := f.NewSheet(exerciseSheet); err != nil {
		log.Fatal(err)
	}

	writeRow(f, workoutSheet, 1, []interface{}{"ID", "Date", "Duration (min)"})
	writeRow(f, exerciseSheet, 1, []interface{}{"Workout ID", "Name", "Reps", "Sets", "Weight"})

	exerciseRow := 2
	for i, w := range workouts {
		writeRow(f, workoutSheet, i+2, []interface{}{
			w.ID, w.WorkoutDate.Format("2006-01-02"), w.DurationMinutes,
		})
		for _, e := range w.Exercises {
			writeRow(f, exerciseSheet, exerciseRow, []interface{}{
				w.ID, e.Name, e.Reps, e.Sets, e.Weight,
			})
			exerciseRow++
		}
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Exported %d workouts for %s to %s\n", len(workouts), user.Email, *out)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		log.Fatal(err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		log.Fatal(err)
	}
}
