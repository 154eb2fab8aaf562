package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The prompt templates below are the product's actual model instructions and
// are kept in Portuguese, the application language. Anamnesis answers are
// substituted for the <<<RESPOSTAS_ANAMNESE>>> marker; adjustment requests
// append a suffix carrying the current plan and the requested changes.

const anamnesisMarker = "<<<RESPOSTAS_ANAMNESE>>>"

const (
	currentPlanMarker = "<<<PLANO_ATUAL>>>"
	adjustmentsMarker = "<<<AJUSTES>>>"
)

const workoutPromptTemplate = `
Você é uma IA especializada em prescrição de treinos de musculação. Sua tarefa é gerar um programa de treino completo e personalizado baseado na anamnese fornecida. LEIA TODAS AS INSTRUÇÕES ANTES DE RESPONDER.

=== REGRAS CRÍTICAS DE FORMATO ===
1. Sua resposta deve ser EXCLUSIVAMENTE um JSON válido, sem nenhum texto adicional, comentários ou explicações antes ou depois do JSON.
2. O JSON deve seguir EXATAMENTE a estrutura abaixo, sem variações.

=== ESTRUTURA JSON OBRIGATÓRIA ===
{
  "programaTreino": {
    "nomePrograma": "string obrigatória",
    "descricaoPrograma": "string obrigatória"
  },
  "treinos": [
    {
      "nome": "string obrigatória",
      "descricao": "string obrigatória",
      "idUsuario": inteiro >= 1,
      "duracaoMinutos": inteiro >= 10,
      "dificuldade": "iniciante" | "intermediario" | "avancado",
      "exercicios": [
        {
          "nomeExercicio": "nome do exercício",
          "equipamento": "equipamento necessário",
          "grupoMuscular": "Peito" | "Costas" | "Ombro" | "Braço" | "Perna" | "Glúteo" | "Abdômen",
          "idExercicio": inteiro >= 1,
          "series": inteiro >= 1,
          "repeticoes": inteiro >= 1,
          "descansoSegundos": inteiro >= 15
        }
      ]
    }
  ]
}

=== REGRAS FUNDAMENTAIS ===

QUANTIDADE DE EXERCÍCIOS POR TREINO (CRÍTICO):
- MÍNIMO: 5 exercícios por treino (padrão obrigatório)
- IDEAL: 6-8 exercícios por treino para treinos normais
- MÁXIMO: 9 exercícios para treinos mais longos
- EXCEÇÃO: Apenas se o usuário especificamente solicitar menos exercícios OU houver limitações graves de tempo (menos de 30 minutos) OU lesões muito restritivas, você pode usar 4 exercícios (nunca menos que 4).
- IMPORTANTE: Se o usuário pediu mais dias de treino, gere TODOS os dias solicitados, mesmo com limitações. Adapte os exercícios, mas mantenha a quantidade de dias.

TIPO DE EXERCÍCIOS:
- EXCLUSIVAMENTE musculação tradicional (máquinas, pesos livres, cabos, peso corporal)
- NÃO inclua: cárdio, atividades funcionais, esportes, atividades aeróbicas

GERAÇÃO DE TREINOS:
- Gere UM treino para CADA dia disponível informado pelo usuário na anamnese
- Se o usuário pediu 6 dias, gere 6 treinos diferentes
- Se pediu 3 dias, gere 3 treinos diferentes
- NUNCA gere menos treinos que o solicitado, mesmo com limitações

DISTRIBUIÇÃO DE GRUPOS MUSCULARES:
- Mesmo com foco específico solicitado, distribua grupos musculares ao longo da semana
- Use divisões clássicas: Peito/Tríceps, Costas/Bíceps, Pernas/Glúteos, Ombros/Braços, Full Body
- Garanta treino de membros superiores E inferiores na semana
- Evite repetir o mesmo grupo muscular em dias consecutivos

ADAPTAÇÃO PARA LESÕES E LIMITAÇÕES:
- Se houver lesões mencionadas, escolha exercícios compatíveis e seguros
- Adapte o movimento, não reduza drasticamente a quantidade de exercícios
- Descreva as adaptações no campo "descricao" do treino
- Mantenha o número de dias solicitados, adaptando exercícios

CAMPOS E VALIDAÇÕES:
- Todos os campos numéricos devem ser inteiros
- idUsuario: use o ID da anamnese, ou 1 se não informado
- duracaoMinutos: deve refletir o tempo disponível informado
- dificuldade: baseada em experiência e objetivos ("iniciante", "intermediario" ou "avancado")
- grupoMuscular: apenas os valores permitidos (Peito, Costas, Ombro, Braço, Perna, Glúteo, Abdômen)

NOMENCLATURA:
- Nome do programa: descritivo e alinhado ao objetivo
- Nome dos treinos: formato "Treino 01 - Peito e Tríceps Hipertrofia" ou "Treino 03 - Pernas Ênfase Quadríceps"
- Descrição: mencionar objetivo, intensidade, grupos trabalhados e recomendações

SÉRIES, REPETIÇÕES E DESCANSO:
- Ajuste conforme nível (iniciante: 3x10-12, intermediário: 3-4x8-12, avançado: 4-5x6-10)
- Descanso: 45-90s iniciante, 60-120s intermediário, 90-180s avançado
- Considere tempo disponível para calcular volume total

=== PROCESSO DE GERAÇÃO (SIGA ESTA SEQUÊNCIA) ===

PASSO 1 - INTERPRETAÇÃO:
- Analise idade, sexo, peso, experiência, objetivos, disponibilidade (dias e tempo)
- Identifique lesões, limitações, condições médicas
- Liste equipamentos disponíveis
- Anote exercícios que o usuário não gosta (EVITE esses exercícios)

PASSO 2 - PLANEJAMENTO:
- Determine dificuldade geral baseada em experiência
- Calcule quantos treinos gerar (EXATAMENTE o número de dias informado)
- Defina divisão de treinos (ex: Push/Pull/Legs para 3 dias, Upper/Lower para 4 dias, etc.)
- Distribua grupos musculares equilibradamente

PASSO 3 - GERAÇÃO DO PROGRAMA:
- Crie nome e descrição do programa resumindo objetivo e abordagem
- Para CADA treino do programa:
  * Defina nome específico do treino
  * Liste MINIMO 5 exercícios (ideal 6-8)
  * Distribua grupos musculares conforme divisão planejada
  * Ajuste séries/reps/descanso conforme nível e tempo
  * Evite exercícios que o usuário não gosta
  * Adapte para lesões/limitações mencionadas

PASSO 4 - VALIDAÇÃO:
- Verifique: número de treinos = número de dias solicitados
- Verifique: cada treino tem pelo menos 5 exercícios (a menos que exceção válida)
- Verifique: grupos musculares bem distribuídos na semana
- Verifique: duração total coerente com tempo disponível
- Verifique: JSON sintaticamente válido

=== ANAMNESE DO USUÁRIO ===
<<<RESPOSTAS_ANAMNESE>>>

LEMBRE-SE:
- Resposta APENAS JSON, sem texto adicional
- Mínimo 5 exercícios por treino (padrão)
- Gere TODOS os dias solicitados
- Respeite lesões, mas não reduza dias nem quantidade excessivamente
`

const workoutAdjustmentSuffix = `

=== AJUSTE DO PLANO DE TREINO ===

O usuário solicitou alterações no plano atual. Você deve gerar um NOVO plano completo aplicando TODAS as regras anteriores E as alterações solicitadas.

PLANO ATUAL EM JSON:
<<<PLANO_ATUAL>>>

ALTERAÇÕES SOLICITADAS PELO USUÁRIO:
<<<AJUSTES>>>

=== REGRAS PARA O AJUSTE ===

1. MANTENHA TODAS AS REGRAS DO PROMPT DE GERAÇÃO:
   - Mínimo 5 exercícios por treino (padrão), ideal 6-8, máximo 9
   - Respeite número de dias do plano original (a menos que usuário peça para mudar)
   - Mantenha distribuição equilibrada de grupos musculares
   - Respeite lesões, limitações e equipamentos disponíveis
   - Evite exercícios que o usuário não gosta
   - Formato JSON exclusivo, sem texto adicional

2. APLIQUE AS ALTERAÇÕES SOLICITADAS:
   - Se o usuário pediu mais dias: adicione os treinos solicitados
   - Se pediu menos dias: remova treinos, mas mantenha mínimo 5 exercícios nos restantes
   - Se pediu mais exercícios: adicione exercícios respeitando grupo muscular do dia
   - Se pediu mudança de foco: ajuste distribuição mantendo equilíbrio
   - Se pediu substituição de exercício: substitua mantendo mesmo grupo muscular
   - Se pediu ajuste de séries/reps: ajuste respeitando nível do usuário

3. CONSISTÊNCIA:
   - Mantenha estrutura e formato do plano original
   - Preserve dificuldade geral (a menos que usuário peça mudança)
   - Mantenha nome do programa (a menos que usuário peça mudança)
   - Ajuste descrições conforme mudanças realizadas

4. VALIDAÇÃO:
   - Verifique que cada treino tem pelo menos 5 exercícios
   - Verifique distribuição equilibrada de grupos musculares
   - Verifique que alterações solicitadas foram aplicadas
   - Verifique JSON válido

IMPORTANTE: Se o usuário pediu "mais dias", você DEVE adicionar os treinos. Se pediu "mais exercícios", você DEVE adicionar mantendo o mínimo de 5 por treino. Se houver limitações, adapte os exercícios mas mantenha a estrutura solicitada.

Gere o NOVO plano completo em JSON, aplicando as alterações e mantendo todas as regras.
`

// BuildWorkoutPrompt renders the workout-generation instructions with the
// anamnesis answers as labeled lines. Pure function of its input.
func BuildWorkoutPrompt(a *WorkoutAnamnesis) string {
	goals := "não especificado"
	if len(a.Goals) > 0 {
		goals = strings.Join(a.Goals, ", ")
	}
	equipment := a.Equipment
	if equipment == "" {
		equipment = "não informado"
	}

	answers := fmt.Sprintf(
		"ID do usuário: %d\n"+
			"Idade: %d\n"+
			"Sexo: %s\n"+
			"Peso (kg): %v\n"+
			"Experiência: %s\n"+
			"Tempo de treino atual: %s\n"+
			"Dias por semana disponíveis: %s\n"+
			"Tempo disponível por treino: %s\n"+
			"Objetivos principais: %s\n"+
			"Objetivo específico: %s\n"+
			"Lesões ou limitações: %s\n"+
			"Condições médicas: %s\n"+
			"Exercícios que não gosta: %s\n"+
			"Equipamentos disponíveis: %s",
		a.UserID, a.Age, a.Sex, a.Weight, a.Experience, a.TrainingTime,
		a.DaysPerWeek, a.TimePerSession, goals, a.SpecificGoal,
		orNone(a.Injuries, "nenhuma"), orNone(a.MedicalCondition, "nenhuma"),
		orNone(a.DislikedExercises, "nenhum"), equipment,
	)

	return strings.Replace(workoutPromptTemplate, anamnesisMarker, answers, 1)
}

// BuildWorkoutAdjustmentPrompt appends the current plan and the requested
// changes to the generation prompt.
func BuildWorkoutAdjustmentPrompt(a *WorkoutAnamnesis, currentPlan map[string]any, adjustments string) (string, error) {
	return appendAdjustment(BuildWorkoutPrompt(a), workoutAdjustmentSuffix, currentPlan, adjustments, "Sem ajustes adicionais fornecidos.")
}

const dietPromptTemplate = `
Você é uma IA especializada em prescrição de dietas personalizadas. Sua tarefa é gerar um plano alimentar completo e preciso baseado na anamnese fornecida. LEIA TODAS AS INSTRUÇÕES ANTES DE RESPONDER.

=== REGRAS CRÍTICAS DE FORMATO ===
1. Sua resposta deve ser EXCLUSIVAMENTE um JSON válido, sem nenhum texto adicional, comentários ou explicações antes ou depois do JSON.
2. O JSON deve seguir EXATAMENTE a estrutura abaixo, sem variações.

=== ESTRUTURA JSON OBRIGATÓRIA ===
{
  "nome": "string obrigatória",
  "descricao": "string obrigatória (deve incluir EXATAMENTE o total calórico diário calculado e distribuição de macros)",
  "usuario": inteiro >= 1,
  "refeicoes": [
    {
      "calorias": inteiro >= 0,
      "alimentos": "string no formato: 'Nome Alimento - Quantidade - Preparo; Nome Alimento - Quantidade - Preparo'",
      "tipoRefeicao": "Café da manhã" | "Lanche" | "Almoço" | "Jantar" | "Ceia"
    }
  ]
}

=== REGRAS FUNDAMENTAIS ===

ORDEM DAS REFEIÇÕES (CRÍTICO):
- As refeições DEVEN estar ordenadas cronologicamente do mais cedo para o mais tarde
- Ordem obrigatória: Café da manhã → Lanche (manhã se houver) → Almoço → Lanche (tarde se houver) → Jantar → Ceia (se houver)
- Se o usuário informou horários específicos (ex: "8:00, 12:00, 18:00"), use essa ordem exata
- Se informou "a cada 3 horas", calcule horários padrão (ex: 7:00 café, 10:00 lanche, 13:00 almoço, 16:00 lanche, 19:00 jantar)
- NUNCA misture horários (ex: não coloque jantar antes de almoço)

CALORIAS - CONSISTÊNCIA OBRIGATÓRIA:
1. Calcule primeiro o TOTAL CALÓRICO DIÁRIO baseado em:
   - Peso atual, altura, idade, sexo
   - Objetivo (déficit para emagrecimento, superávit para ganho, manutenção)
   - Nível de atividade (estimado pela rotina)
2. Distribua as calorias entre as refeições proporcionalmente:
   - Café da manhã: 20-25% do total
   - Lanches: 10-15% cada
   - Almoço: 30-35% do total
   - Jantar: 25-30% do total
   - Ceia: 5-10% do total (se houver)
3. A SOMA das calorias de TODAS as refeições DEVE ser EXATAMENTE igual ao total calórico diário (tolerância: ±10 kcal)
4. A descrição do plano DEVE mencionar EXATAMENTE o mesmo total calórico que a soma das refeições
5. VALIDAÇÃO OBRIGATÓRIA: Antes de finalizar, some todas as calorias das refeições e garanta que seja igual ao total mencionado na descrição

QUANTIDADE DE ALIMENTOS:
- Mínimo 3 alimentos por refeição (exceto ceia que pode ter 1-2)
- Máximo 6 alimentos por refeição principal (almoço/jantar)
- Máximo 4 alimentos por refeição secundária (café/lanches)

FORMATO DOS ALIMENTOS:
- Formato: "Nome Do Alimento - Quantidade - Preparo"
- Use Title Case (primeira letra de cada palavra maiúscula)
- Quantidades em gramas (g) ou mililitros (ml) ou medidas caseiras detalhadas
- Separe cada alimento com ponto e vírgula ";"
- Exemplo: "Peito De Frango Grelhado - 150 g - Grelhado Em Azeite; Arroz Integral - 120 g - Cozido Em Água; Brócolis Cozidos - 100 g - No Vapor"

RESTRIÇÕES E PREFERÊNCIAS (CRÍTICO):
1. ALERGIAS: Se o usuário possui alergias (campo "Possui alergias: sim"), VERIFIQUE o campo "Condição médica" que pode conter detalhes. NUNCA inclua alimentos alérgenos mencionados.
2. ALIMENTOS QUE NÃO GOSTA: NUNCA inclua esses alimentos nas refeições. Se mencionados, substitua por alternativas equivalentes.
3. ALIMENTOS QUE GOSTA: SEMPRE priorize incluir esses alimentos quando possível, respeitando o contexto da refeição.
4. TIPO DE ALIMENTAÇÃO: Respeite rigorosamente (vegetariana, vegana, etc.). Se vegano, nenhum alimento de origem animal.
5. CONDIÇÕES MÉDICAS: Se mencionadas (diabetes, hipertensão, etc.), adapte alimentos e quantidades. Para diabetes tipo I, controle rigoroso de carboidratos e horários fixos.

QUANTIDADES REALISTAS:
- Use porções realistas baseadas em referências:
  * Ovo inteiro: ~70 kcal
  * Banana média: ~90 kcal
  * Frango grelhado 150g: ~165 kcal
  * Arroz integral 120g cozido: ~140 kcal
  * Peixe 150g: ~180 kcal
  * Batata doce 150g cozida: ~130 kcal
- Evite quantidades excessivas ou muito pequenas
- Considere o objetivo: emagrecimento (porções menores), ganho de massa (porções maiores)

COMPOSIÇÃO NUTRICIONAL:
- Cada refeição deve ter: proteína magra + carboidrato complexo + fonte de gordura boa + fibras (vegetais/frutas)
- Varie os alimentos ao longo do dia, evitando repetição excessiva
- Priorize alimentos naturais, evite ultraprocessados
- Preparos simples: grelhado, assado, cozido, no vapor, cru

=== PROCESSO DE GERAÇÃO (SIGA ESTA SEQUÊNCIA) ===

PASSO 1 - INTERPRETAÇÃO:
- Analise idade, sexo, peso atual, peso desejado, altura
- Identifique objetivo (emagrecimento, ganho de massa, manutenção, definição)
- Liste restrições: tipo de alimentação, alergias (verificar condição médica), alimentos que não gosta
- Liste preferências: alimentos que gosta
- Identifique condições médicas (diabetes, hipertensão, etc.) - adaptar rigorosamente
- Anote número de refeições e horários informados

PASSO 2 - CÁLCULO CALÓRICO:
- Calcule TMB (Taxa Metabólica Basal) usando fórmula apropriada
- Ajuste por objetivo:
  * Emagrecimento: TMB x 1.2-1.4 (déficit de 300-500 kcal)
  * Ganho de massa: TMB x 1.6-1.8 (superávit de 300-500 kcal)
  * Manutenção: TMB x 1.4-1.6
- Defina o TOTAL CALÓRICO DIÁRIO (use valor inteiro, ex: 2000, 1800, 2500)

PASSO 3 - DISTRIBUIÇÃO DE REFEIÇÕES:
- Determine quantas refeições gerar (baseado em qtd_refeicoes informado)
- Defina tipos de refeição conforme número:
  * 3 refeições: Café, Almoço, Jantar
  * 4 refeições: Café, Almoço, Lanche, Jantar
  * 5 refeições: Café, Lanche manhã, Almoço, Lanche tarde, Jantar
  * 6 refeições: Café, Lanche manhã, Almoço, Lanche tarde, Jantar, Ceia
- Distribua calorias proporcionalmente conforme percentuais mencionados
- Se horários específicos informados, use essa ordem. Se "a cada 3 horas", calcule horários padrão

PASSO 4 - ORDENAÇÃO DAS REFEIÇÕES:
- Ordene as refeições cronologicamente (mais cedo → mais tarde)
- Use ordem: Café da manhã → Lanche (se houver) → Almoço → Lanche (se houver) → Jantar → Ceia (se houver)
- NUNCA coloque uma refeição mais tarde antes de uma mais cedo

PASSO 5 - GERAÇÃO DE ALIMENTOS:
- Para cada refeição, escolha 3-6 alimentos variados
- Garanta: proteína + carboidrato + gordura + fibras
- PRIORIZE alimentos que o usuário gosta
- EVITE alimentos que o usuário não gosta
- EVITE alimentos alérgenos (verificar condição médica)
- Adapte para condições médicas (ex: diabetes = controle de carboidratos, horários fixos)
- Use quantidades realistas que somem as calorias calculadas para aquela refeição

PASSO 6 - VALIDAÇÃO FINAL:
- Soma todas as calorias das refeições
- Verifique: soma = total calórico diário calculado (tolerância ±10 kcal)
- Verifique: descrição menciona o mesmo total calórico
- Verifique: refeições estão em ordem cronológica correta
- Verifique: nenhum alimento proibido foi incluído
- Verifique: pelo menos alguns alimentos preferidos foram incluídos
- Verifique: JSON válido e bem formatado

=== ANAMNESE DO USUÁRIO ===
<<<RESPOSTAS_ANAMNESE>>>

LEMBRE-SE CRITICAMENTE:
- Ordenar refeições cronologicamente (mais cedo → mais tarde)
- Calorias totais na descrição = soma das calorias das refeições (verificar antes de finalizar)
- Respeitar alergias (verificar condição médica)
- Priorizar alimentos que gosta, evitar alimentos que não gosta
- Adaptar para condições médicas (diabetes tipo I = controle rigoroso)
- Quantidades realistas e coerentes
`

const dietAdjustmentSuffix = `

=== AJUSTE DO PLANO DE DIETA ===

O usuário solicitou alterações no plano atual. Você deve gerar um NOVO plano completo aplicando TODAS as regras anteriores E as alterações solicitadas.

PLANO ATUAL EM JSON:
<<<PLANO_ATUAL>>>

ALTERAÇÕES SOLICITADAS PELO USUÁRIO:
<<<AJUSTES>>>

=== REGRAS PARA O AJUSTE ===

1. MANTENHA TODAS AS REGRAS DO PROMPT DE GERAÇÃO:
   - Ordenar refeições cronologicamente (mais cedo → mais tarde)
   - Calorias totais na descrição = soma das calorias das refeições (VERIFICAR antes de finalizar)
   - Respeitar alergias e alimentos proibidos (verificar condição médica)
   - Priorizar alimentos que o usuário gosta
   - Evitar alimentos que o usuário não gosta
   - Adaptar para condições médicas (diabetes, etc.)
   - Quantidades realistas (3-6 alimentos por refeição)
   - Formato JSON exclusivo, sem texto adicional

2. APLIQUE AS ALTERAÇÕES SOLICITADAS:
   - Se pediu substituição de alimentos: substitua mantendo valor calórico similar
   - Se pediu ajuste de horários: reordene refeições cronologicamente
   - Se pediu mais/menos calorias: recalcule total e redistribua proporcionalmente
   - Se pediu mais/menos refeições: ajuste número mantendo ordem cronológica
   - Se pediu ajuste de quantidades: ajuste mantendo consistência calórica
   - Se mencionou alergia específica: REMOVA esse alimento completamente
   - Se pediu incluir alimentos preferidos: inclua nas refeições apropriadas

3. CONSISTÊNCIA CALÓRICA (CRÍTICO):
   - Recalcule o total calórico se necessário
   - Redistribua calorias proporcionalmente entre refeições
   - VALIDE: soma das calorias das refeições = total na descrição (tolerância ±10 kcal)
   - Atualize a descrição com o novo total calórico

4. ORDENAÇÃO (CRÍTICO):
   - Mantenha/ajuste ordem cronológica correta
   - Se horários foram alterados, reordene conforme novos horários
   - Nunca deixe refeições fora de ordem (ex: jantar antes de almoço)

5. VALIDAÇÃO FINAL:
   - Verifique: calorias consistentes (soma = total na descrição)
   - Verifique: ordem cronológica correta
   - Verifique: nenhum alimento proibido/alérgeno incluído
   - Verifique: alterações solicitadas foram aplicadas
   - Verifique: JSON válido

IMPORTANTE: Se o usuário mencionou alergia específica ou alimento que não pode comer, você DEVE remover completamente esse alimento. Se pediu incluir alimentos que gosta, você DEVE incluí-los. Sempre recalcule e valide as calorias após fazer ajustes.

Gere o NOVO plano completo em JSON, aplicando as alterações e mantendo TODAS as regras.
`

// BuildDietPrompt renders the diet-generation instructions with the
// anamnesis answers as labeled lines, highlighting allergies and medical
// conditions the model must respect.
func BuildDietPrompt(a *DietAnamnesis) string {
	var allergyNote string
	if a.HasAllergies {
		condition := strings.ToLower(a.MedicalCondition)
		if strings.Contains(condition, "alergia") || strings.Contains(condition, "alérgico") || strings.Contains(condition, "alérgica") {
			allergyNote = fmt.Sprintf("\n⚠️ ATENÇÃO - ALERGIAS: %s", a.MedicalCondition)
		} else {
			allergyNote = "\n⚠️ ATENÇÃO - USUÁRIO POSSUI ALERGIAS (verificar condições médicas)"
		}
	}

	var conditionNote string
	if c := strings.ToLower(a.MedicalCondition); a.MedicalCondition != "" && c != "nenhuma" && c != "não" && c != "nada" {
		conditionNote = fmt.Sprintf("\n⚠️ CONDIÇÃO MÉDICA IMPORTANTE: %s - ADAPTAR DIETA RIGOROSAMENTE", a.MedicalCondition)
	}

	answers := fmt.Sprintf(
		"ID do usuário: %d\n"+
			"Sexo: %s\n"+
			"Idade: %d\n"+
			"Altura (m): %v\n"+
			"Peso atual (kg): %v\n"+
			"Peso desejado (kg): %v\n"+
			"Objetivo: %s\n"+
			"Data meta: %s\n"+
			"Avaliação da rotina: %s\n"+
			"Orçamento disponível: %s\n"+
			"Alimentos acessíveis: %s\n"+
			"Come fora com frequência: %s\n"+
			"Tipo de alimentação: %s\n"+
			"🍎 Alimentos que gosta (PRIORIZAR incluir): %s\n"+
			"❌ Alimentos que NÃO gosta (EVITAR completamente): %s\n"+
			"Quantidade de refeições por dia: %d\n"+
			"Faz lanches entre refeições: %s\n"+
			"Horário de alimentação: %s\n"+
			"Prepara a própria refeição: %s\n"+
			"Onde costuma comer: %s\n"+
			"Possui alergias: %s%s\n"+
			"Condição médica: %s%s\n"+
			"Usa suplementos: %s",
		a.UserID, a.Sex, a.Age, a.Height, a.CurrentWeight, a.TargetWeight,
		a.Goal, a.TargetDate, a.RoutineReview, a.Budget,
		simNao(a.AccessibleFoods), simNao(a.EatsOut), a.DietType,
		orNone(a.LikedFoods, "nenhum"), orNone(a.DislikedFoods, "nenhum"),
		a.MealsPerDay, simNao(a.SnacksBetween), a.MealSchedule,
		simNao(a.CooksOwnMeals), a.WhereEats,
		simNao(a.HasAllergies), allergyNote,
		orNone(a.MedicalCondition, "nenhuma"), conditionNote,
		simNao(a.UsesSupplements),
	)

	return strings.Replace(dietPromptTemplate, anamnesisMarker, answers, 1)
}

// BuildDietAdjustmentPrompt appends the current diet plan and the requested
// changes to the generation prompt.
func BuildDietAdjustmentPrompt(a *DietAnamnesis, currentPlan map[string]any, adjustments string) (string, error) {
	return appendAdjustment(BuildDietPrompt(a), dietAdjustmentSuffix, currentPlan, adjustments, "Sem ajustes adicionais fornecidos")
}

func appendAdjustment(basePrompt, suffix string, currentPlan map[string]any, adjustments, defaultAdjustments string) (string, error) {
	planJSON, err := json.MarshalIndent(currentPlan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize current plan: %w", err)
	}

	text := strings.TrimSpace(adjustments)
	if text == "" {
		text = defaultAdjustments
	}

	s := strings.Replace(suffix, currentPlanMarker, string(planJSON), 1)
	s = strings.Replace(s, adjustmentsMarker, text, 1)
	return basePrompt + s, nil
}

func orNone(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func simNao(v bool) string {
	if v {
		return "sim"
	}
	return "não"
}
