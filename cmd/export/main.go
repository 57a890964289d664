package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ikkim/gonggu-backend/config"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	"github.com/ikkim/gonggu-backend/internal/db"
)

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/export/main.go <group_id> [output.xlsx]")
	}
	groupID := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	conn := db.GetDB()
	settlementService := service.NewSettlementService(
		repository.NewGroupRepository(conn),
		repository.NewOrderRepository(conn),
		repository.NewMemberRepository(conn),
		repository.NewMiscChargeRepository(conn),
		cfg.Settlement.MembershipFlatFee,
	)

	buf, filename, err := settlementService.ExportGroup(groupID)
	if err != nil {
		log.Fatal("Failed to export settlement:", err)
	}

	if len(os.Args) > 2 {
		filename = os.Args[2]
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		log.Fatal("Failed to write workbook:", err)
	}

	fmt.Printf("Settlement written to %s (%d bytes)\n", filename, buf.Len())
}
