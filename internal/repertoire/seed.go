package repertoire

// openings is the compiled-in study repertoire. Order matters: it is the
// display order everywhere.
var openings = []Opening{
	{
		Name:  "White - Catalan Closed",
		Moves: "1.d4 d5 2.c4 e6 3.Nf3 Nf6 4.g3 Be7 5.Bg2 O-O 6.O-O Nbd7 7.Qc2 c6 8.Nbd2 b6 9.e4 Bb7 10.e5 Ne8 11.cxd5 cxd5 12.Nb3 Rc8 13.Qe2 Nc7 14.Bf4 Ba6 15.Qe3",
		KeyIdeas: []string{
			"Move 7. Qc2: Queen supports e4 advance and eyes h7",
			"Move 9. e4: THE key plan! Get space in center",
			"Move 11. cxd5: Open lines for pieces, Bg2 becomes powerful",
			"Move 14. Bf4: Develop with tempo, control central squares",
		},
		Plan: "Control center with d4-e5 pawns. Bg2 pressures queenside. Look for tactics on d5. Improve pieces (Rooks to c1/e1).",
	},
	{
		Name:  "White - Catalan Open",
		Moves: "1.d4 d5 2.c4 e6 3.Nf3 Nf6 4.g3 dxc4 5.Bg2 a6 6.O-O Nc6 7.e3 Bd6 8.Qe2 b5 9.a4 Rb8 10.Nbd2 O-O 11.Nxc4 Bb7 12.Nxd6 Qxd6 13.Bd2 Rfd8 14.Rfc1 Ne7 15.Bc3",
		KeyIdeas: []string{
			"Move 5-6: Black takes c4 pawn - don't panic! Better development compensates",
			"Move 7. e3: Flexible, supports center and prepares Qe2",
			"Move 9. a4: CRITICAL! Stop Black's ...b4 expansion",
			"Move 11. Nxc4: Finally win pawn back, trade Black's good bishop",
		},
		Plan: "Better piece coordination. Control c-file. Look for d5 breakthrough. Bg2 aims at Black's king.",
	},
	{
		Name:  "White - Italian Game",
		Moves: "1.e4 e5 2.Nf3 Nc6 3.Bc4 Bc5 4.c3 Nf6 5.d4 exd4 6.cxd4 Bb4+ 7.Bd2 Bxd2+ 8.Nbxd2 d5 9.exd5 Nxd5 10.Qb3 Nce7 11.O-O O-O 12.Rfe1 c6 13.a4",
		KeyIdeas: []string{
			"Move 4. c3: Prepares d4 break - THE key move",
			"Move 5. d4: Central break when better developed",
			"Move 6. cxd4: Recapture toward center, strong d4 pawn",
			"Move 8. Nbxd2: Knight supports center, can jump to f3/e4",
			"Move 10. Qb3: Attacks d5 and b7 simultaneously",
		},
		Plan: "Small advantage from isolated d4 pawn. Activate rooks on e-file and c-file. Create threats before Black stabilizes.",
	},
	{
		Name:  "Black - Caro-Kann Classical",
		Moves: "1.e4 c6 2.d4 d5 3.Nc3 dxe4 4.Nxe4 Bf5 5.Ng3 Bg6 6.h4 h6 7.Nf3 Nd7 8.h5 Bh7 9.Bd3 Bxd3 10.Qxd3 e6 11.Bd2 Ngf6 12.O-O-O Be7 13.Ne4 Nxe4 14.Qxe4 Nf6 15.Qe2 O-O",
		KeyIdeas: []string{
			"Move 1...c6: Supports d5, keeps bishop diagonal open",
			"Move 3...dxe4: Trade center pawns for solid structure",
			"Move 4...Bf5: KEY MOVE! Bishop out BEFORE ...e6",
			"Move 6...h6: Stop White's h5 push",
			"Move 9...Bxd3: Trade dangerous dark-squared bishop",
		},
		Plan: "Solid position with no weaknesses. Complete development (...Ngf6, ...Be7, ...O-O). Look for ...c5 break. Slightly cramped but very solid.",
	},
	{
		Name:  "Black - Caro-Kann Advance",
		Moves: "1.e4 c6 2.d4 d5 3.e5 Bf5 4.Nf3 e6 5.Be2 c5 6.Be3 Nc6 7.c3 Qb6 8.Qb3 c4 9.Qxb6 axb6 10.Nbd2 b5 11.O-O b4",
		KeyIdeas: []string{
			"Move 3...Bf5: Same idea - bishop out early before ...e6",
			"Move 5...c5: Attack center immediately! Undermine e5 and d4",
			"Move 7...Qb6: Dual purpose - attacks b2 and pressures d4",
			"Move 8...c4: Lock center, gives queenside space",
		},
		Plan: "Minority attack on queenside with ...b5-b4. White has more space but position is solid. Develop ...Nd7, ...Ne7, ...Rc8. Eventually ...f6 to challenge e5.",
	},
	{
		Name:  "Black - QGD Orthodox",
		Moves: "1.d4 d5 2.c4 e6 3.Nc3 Nf6 4.Bg5 Be7 5.e3 O-O 6.Nf3 Nbd7 7.Rc1 c6 8.Bd3 dxc4 9.Bxc4 Nd5 10.Bxe7 Qxe7 11.O-O Nxc3 12.Rxc3 e5 13.dxe5 Nxe5 14.Nxe5 Qxe5",
		KeyIdeas: []string{
			"Move 2...e6: QGD formation - solid center, protects d5",
			"Move 4...Be7: Simple development",
			"Move 7...c6: IMPORTANT! Supports d5, prepares minority attack ideas",
			"Move 8...dxc4: Wait for Bd3, then trade it off",
			"Move 9...Nd5: Jump to center, force trade of good bishop",
		},
		Plan: "Solid symmetrical position. Trade pieces when behind in space. Develop light-squared bishop to b7/e6. Look for ...c5 break eventually.",
	},
	{
		Name:  "Black - King's Indian",
		Moves: "1.d4 Nf6 2.c4 g6 3.Nc3 Bg7 4.e4 d6 5.Nf3 O-O 6.Be2 e5 7.O-O Nc6 8.d5 Ne7 9.Ne1 Nd7 10.f3 f5 11.Be3 f4 12.Bf2 g5 13.Nd3 Ng6 14.c5",
		KeyIdeas: []string{
			"Moves 1-3: King's Indian setup - fianchetto dark-squared bishop",
			"Move 5...O-O: Castle quickly for safety",
			"Move 6...e5: KEY MOVE! Play for kingside attack, not classical center",
			"Move 9...Nd7: Maneuver knight to kingside (Nd7-f6-h5/g4)",
			"Move 10...f5: ATTACK! This is KID spirit - play for checkmate",
		},
		Plan: "SHARP! Both sides attack opposite flanks. Attack White's king with ...g5-g4, ...Ng6-f4/h5. It's a RACE to checkmate. Only play when feeling sharp!",
	},
}
