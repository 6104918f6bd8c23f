package intake

import (
	"fmt"
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/options"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/pricing"
)

// Message is one assistant reply.
type Message struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

const roleAssistant = "assistant"

func say(content string) Message {
	return Message{Role: roleAssistant, Content: content}
}

const (
	msgWelcome         = "Bienvenido a Construct-IA. Soy su asistente virtual y le acompañaré en el proceso de pre–cotización de su vivienda."
	msgBuilderQuestion = "Para iniciar, por favor seleccione la constructora de su preferencia. Si aún no tiene una definida, puede elegir la opción sin preferencia."
	msgResetAck        = "De acuerdo, reiniciaremos el flujo para comenzar una nueva pre–cotización."
	msgHouseIntro      = "A continuación, necesitaremos algunos datos básicos de la vivienda que desea pre–cotizar."
	msgThinking        = "Muchas gracias. Con la información proporcionada generaré un diseño de referencia y una pre–cotización aproximada. Por favor, espere un momento…"
	msgDesignImage     = "A continuación se muestra un diseño generado por inteligencia artificial. El plano y la imagen son referenciales y se utilizan únicamente como apoyo para la pre–cotización."
	msgDesignFailed    = "Se ha producido un inconveniente al generar el diseño con la inteligencia artificial. Puede intentar nuevamente más tarde o ajustar algunos datos y volver a intentarlo."
	msgAskContinue     = "¿Desea continuar para seleccionar la ferretería de referencia donde adquiriría los materiales? Responda 'sí' para continuar o 'no' si prefiere detener el proceso en este punto."
	msgSupplierPrompt  = "De acuerdo. Ahora, por favor seleccione la ferretería de referencia donde preferiría adquirir los materiales."
	msgStopped         = "Entendido. Si en otro momento desea continuar con la selección de ferretería, puede volver a abrir el asistente o escribir 'reiniciar' para comenzar una nueva pre–cotización."
	msgBankPrompt      = "Ahora, por favor seleccione el banco de referencia para la simulación del financiamiento. Le mostraremos algunas tasas referenciales:"
	msgBankOpen        = "Perfecto. Dejaremos el financiamiento abierto, sin asociarlo a un banco específico por el momento."
	msgContactIntro    = "Para registrar su solicitud y poder darle seguimiento, necesitaremos algunos datos de contacto."
	msgAskEmail        = "Por favor, indíquenos su correo electrónico."
	msgAskPhone        = "Gracias. Ahora, por favor indíquenos su número de celular (incluya el código de país si aplica)."
	msgAskMode         = "¿Cómo prefiere formalizar la propuesta? Escriba 'presencial' o 'virtual'."
	msgAskPlace        = "Perfecto. ¿En qué lugar prefiere que le atienda nuestro equipo? (por ejemplo: oficinas de la constructora, su domicilio, una cafetería, etc.)."
	msgAskVirtual      = "De acuerdo. ¿Por cuál canal virtual prefiere que nos comuniquemos? Elija una opción:\n1. WhatsApp\n2. Zoom\n3. Google Meet"
	msgLookup          = "Si desea consultar su pre–cotización más adelante, puede hacerlo con su número de ticket y su correo electrónico."
	msgGoodbye         = "Gracias por utilizar Construct-IA. Si desea iniciar una nueva pre–cotización, puede escribir la palabra 'reiniciar'."
	msgAlreadyIssued   = "Su ticket ya ha sido generado. Si desea iniciar una nueva pre–cotización, puede escribir la palabra 'reiniciar'."
)

func openingMessages(c entities.Catalog) []Message {
	return []Message{
		say(msgWelcome),
		say(msgBuilderQuestion),
		say(options.Format("Opciones de constructora:", c.Builders)),
	}
}

func builderChosenMessage(builder string) Message {
	if entities.IsNoPreference(builder) {
		return say("Gracias. Trabajaremos sin una constructora específica como referencia en esta etapa.")
	}
	return say(fmt.Sprintf("Gracias. Tomaremos a %s como constructora de referencia para esta pre–cotización.", builder))
}

func supplierChosenMessage(supplier string) Message {
	if entities.IsNoPreference(supplier) {
		return say("Gracias. Tomaremos en cuenta que, por el momento, no cuenta con una ferretería específica.")
	}
	return say(fmt.Sprintf("Gracias. Tomaremos la ferretería %s como punto de referencia para la cotización de materiales.", supplier))
}

func bankOptionsMessage(banks []entities.Bank) Message {
	lines := make([]string, 0, len(banks))
	for i, b := range banks {
		line := fmt.Sprintf("%d. %s", i+1, b.Name)
		if b.Rate > 0 {
			line += fmt.Sprintf(" – tasa de interés %.2f%%", b.Rate)
		}
		lines = append(lines, line)
	}
	return say("Opciones de banco:\n" + strings.Join(lines, "\n"))
}

func bankChosenMessage(b entities.Bank) Message {
	if b.Rate > 0 {
		return say(fmt.Sprintf("Perfecto. Utilizaremos %s con una tasa referencial de %.2f%% para la simulación del financiamiento.", b.Name, b.Rate))
	}
	return say(msgBankOpen)
}

func designMessages(builder string, d design) []Message {
	msgs := []Message{
		{Role: roleAssistant, Content: msgDesignImage, ImageURL: d.blueprintRef},
		say(fmt.Sprintf("La inversión estimada para esta vivienda es de aproximadamente L. %s. Este monto es referencial y podrá ajustarse durante el análisis detallado del proyecto.", pricing.FormatLempiras(d.estimatedCost))),
	}
	if builder != "" {
		msgs = append(msgs, say(fmt.Sprintf("Esta pre–cotización se ha preparado tomando como referencia la constructora: %s.", builder)))
	} else {
		msgs = append(msgs, say("Esta pre–cotización se ha preparado sin una constructora específica como referencia."))
	}
	return append(msgs, say(msgAskContinue))
}

func summaryMessages(t ticketIssued) []Message {
	var parts []string
	if t.builder != "" {
		parts = append(parts, "• Constructora de referencia: "+t.builder)
	}
	if t.supplier != "" {
		parts = append(parts, "• Ferretería de referencia: "+t.supplier)
	}
	if t.bank.Name != "" {
		line := "• Banco de referencia: " + t.bank.Name
		if t.bank.Rate > 0 {
			line += fmt.Sprintf(" (tasa referencial %.2f%%)", t.bank.Rate)
		}
		parts = append(parts, line)
	}
	parts = append(parts,
		"• Monto estimado de la pre–cotización: L. "+pricing.FormatLempiras(t.design.estimatedCost),
		"• Correo electrónico: "+t.contact.Email,
		"• Número de celular: "+t.contact.Phone,
	)
	switch t.contact.Mode {
	case entities.ContactModePresencial:
		parts = append(parts, "• Modalidad de atención: Presencial en "+t.contact.Place)
	case entities.ContactModeVirtual:
		parts = append(parts, "• Modalidad de atención: Virtual mediante "+string(t.contact.VirtualChannel))
	}

	return []Message{
		say("Hemos registrado su solicitud con el siguiente resumen:\n\n" + strings.Join(parts, "\n")),
		say(fmt.Sprintf("Su número de ticket es: **%s**. Podrá utilizarlo más adelante para consultar su pre–cotización en la plataforma.", t.ticket)),
		say(msgLookup),
		say(msgGoodbye),
	}
}

// QuickReply is a suggested answer for the current phase.
type QuickReply struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func quickReplies(st state, c entities.Catalog) []QuickReply {
	switch s := st.(type) {
	case selectBuilder:
		return echoReplies(c.Builders)
	case confirmContinue:
		return []QuickReply{{Label: "Sí, continuar", Value: "sí"}, {Label: "No, detener el proceso", Value: "no"}}
	case selectSupplier:
		return echoReplies(c.Suppliers)
	case selectBank:
		replies := make([]QuickReply, 0, len(c.Banks))
		for _, b := range c.Banks {
			label := b.Name
			if b.Rate > 0 {
				label = fmt.Sprintf("%s – %.2f%%", b.Name, b.Rate)
			}
			replies = append(replies, QuickReply{Label: label, Value: b.Name})
		}
		return replies
	case collectContact:
		switch s.contact.step {
		case ContactStepMode:
			return []QuickReply{{Label: "Presencial", Value: "presencial"}, {Label: "Virtual", Value: "virtual"}}
		case ContactStepVirtual:
			return echoReplies([]string{string(entities.VirtualChannelWhatsApp), string(entities.VirtualChannelZoom), string(entities.VirtualChannelGoogleMeet)})
		}
	}
	return nil
}

func echoReplies(values []string) []QuickReply {
	replies := make([]QuickReply, 0, len(values))
	for _, v := range values {
		replies = append(replies, QuickReply{Label: v, Value: v})
	}
	return replies
}
