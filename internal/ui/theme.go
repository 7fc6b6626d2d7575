package ui

import "image/color"

var (
	colBG        = color.RGBA{16, 16, 22, 255}
	colLaneEven  = color.RGBA{26, 26, 34, 255}
	colLaneOdd   = color.RGBA{22, 22, 29, 255}
	colMeasure   = color.RGBA{70, 70, 80, 255}
	colSubdiv    = color.RGBA{40, 40, 48, 255}
	colRuler     = color.RGBA{30, 30, 38, 255}
	colPlayhead  = color.RGBA{230, 60, 60, 255}
	colTransport = color.RGBA{15, 15, 15, 255}

	colButtonBorder = color.RGBA{240, 240, 240, 255}
	colPlayButton   = color.RGBA{40, 200, 40, 255}
	colStopButton   = color.RGBA{200, 40, 40, 255}
	colBPMBox       = color.RGBA{40, 40, 40, 255}
	colSigButton    = color.RGBA{40, 160, 200, 255}
	colError        = color.RGBA{255, 60, 60, 255}

	colAudioBlock  = color.RGBA{60, 130, 90, 255}
	colAudioInner  = color.RGBA{40, 95, 65, 255}
	colNotesBlock  = color.RGBA{70, 100, 180, 255}
	colNote        = color.RGBA{180, 200, 255, 255}
	colBlockBorder = color.RGBA{210, 210, 220, 255}
	colBlockLive   = color.RGBA{255, 220, 120, 255}
)
