package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/lucas2b/ponto-inteligente-api/repositories"
	"github.com/lucas2b/ponto-inteligente-api/web/common"
)

const relatorioMaxLinhas = 10000

// Relatorio exports every punch of a funcionario as an XLSX attachment.
func (ep *LancamentoEndpoint) Relatorio(c *gin.Context) {
	funcionarioID, err := strconv.ParseUint(c.Param("funcionarioId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Id de funcionário inválido"))
		return
	}

	page := repositories.PageRequest{
		Tamanho: relatorioMaxLinhas,
		Ord:     "data",
		Dir:     "ASC",
	}

	dtos, _, err := ep.lancamentos.Listar(c.Request.Context(), funcionarioID, page)
	if err != nil {
		log.Printf("erro gerando relatório do funcionário %d: %v", funcionarioID, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao gerar relatório"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Lançamentos"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Id", "Data", "Tipo", "Descrição", "Localização"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, dto := range dtos {
		values := []interface{}{*dto.ID, dto.Data, dto.Tipo, strOrEmpty(dto.Descricao), strOrEmpty(dto.Localizacao)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("lancamentos-funcionario-%d.xlsx", funcionarioID)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Printf("erro escrevendo relatório: %v", err)
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
