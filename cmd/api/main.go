package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/config"
	appHTTP "github.com/hrms-lite/hrms-backend-go/internal/handler/http"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/mongodb"
	attendanceService "github.com/hrms-lite/hrms-backend-go/internal/service/attendance"
	employeeService "github.com/hrms-lite/hrms-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewMongoDB(cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(cfg, employeeHandler, attendanceHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Println("Server error:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		fmt.Println("Database disconnect error:", err)
	}
}
