package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ikkim/gonggu-backend/config"
	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/internal/db"
)

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <name[:password]> [<name[:password]> ...]")
	}

	members, err := parseMembers(os.Args[1:])
	if err != nil {
		log.Fatal("Invalid member list:", err)
	}

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	memberRepo := repository.NewMemberRepository(db.GetDB())

	fmt.Printf("Members to create: %d\n", len(members))
	for _, m := range members {
		fmt.Printf("  - %s\n", m.Name)
	}

	// 사용자 확인
	fmt.Print("Do you want to proceed? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Seed cancelled.")
		return
	}

	created := 0
	for i := range members {
		if err := memberRepo.Create(&members[i]); err != nil {
			fmt.Printf("Skipped %s: %v\n", members[i].Name, err)
			continue
		}
		created++
	}

	fmt.Printf("Members created: %d\n", created)
}

// parseMembers는 "이름" 또는 "이름:비밀번호" 형식의 인자를 회원으로 변환합니다
func parseMembers(args []string) ([]model.Member, error) {
	seen := make(map[string]bool)
	var members []model.Member
	for _, arg := range args {
		name, password, _ := strings.Cut(arg, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty member name in %q", arg)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate member name %q", name)
		}
		seen[name] = true
		members = append(members, model.Member{Name: name, Password: password})
	}
	return members, nil
}
