package usecase

import (
	"github.com/reelboard/reelboard/internal/pkg/models"
	"github.com/reelboard/reelboard/services/board"
)

// BoardUC wires the board usecases over the credential store, OTP broker,
// content repositories and outbound gateways.
type BoardUC struct {
	userRepo    board.UserRepo
	otpStore    board.OTPStore
	posterRepo  board.PosterRepo
	commentRepo board.CommentRepo
	mailer      board.Mailer
	boardGW     board.BoardGW
	cfg         *models.Config
}

// NewBoardUC creates a new board usecase instance
func NewBoardUC(
	userRepo board.UserRepo,
	otpStore board.OTPStore,
	posterRepo board.PosterRepo,
	commentRepo board.CommentRepo,
	mailer board.Mailer,
	boardGW board.BoardGW,
	cfg *models.Config,
) *BoardUC {
	return &BoardUC{
		userRepo:    userRepo,
		otpStore:    otpStore,
		posterRepo:  posterRepo,
		commentRepo: commentRepo,
		mailer:      mailer,
		boardGW:     boardGW,
		cfg:         cfg,
	}
}
