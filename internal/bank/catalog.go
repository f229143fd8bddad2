package bank

import "github.com/os10prep/os10-backend/internal/model"

// catalog is the static question bank for the OS10 certification course.
// IDs are prefixed by area: L (legislación), P (privacidad), H (DD.HH.),
// E (ética), R (Res. 2183), D (dificultad alta).
var catalog = []model.CategorizedQuestion{
	// ─── Legislación GG.SS. (Ley 21.659) ───────────────────────────────
	{
		Question: model.Question{
			ID:            "L001",
			QuestionText:  "¿Cuál es el plazo máximo para que un Guardia de Seguridad (GG.SS.) denuncie un delito?",
			Options:       []string{"12 horas", "24 horas", "48 horas", "6 horas"},
			CorrectAnswer: 1,
			Explanation:   "Según el Artículo 4 de la Ley 21.659, el deber de denuncia debe cumplirse en un plazo máximo de 24 horas.",
		},
		Category: "Legal",
	},
	{
		Question: model.Question{
			ID:            "L002",
			QuestionText:  "¿Cuál es la vigencia de la credencial OS10 del Guardia de Seguridad según la normativa vigente?",
			Options:       []string{"2 años", "3 años", "4 años", "5 años"},
			CorrectAnswer: 2,
			Explanation:   "La Ley 21.659 extiende la vigencia de la tarjeta de identificación a 4 años, exigiendo re-entrenamiento antes de cada renovación.",
		},
		Category: "Legal",
	},
	{
		Question: model.Question{
			ID:            "L003",
			QuestionText:  "¿Qué rol cumple el Guardia de Seguridad frente a Carabineros de Chile?",
			Options:       []string{"Autoridad equivalente", "Coadyuvante de la seguridad pública", "Reemplazo en ausencia", "Fiscalizador"},
			CorrectAnswer: 1,
			Explanation:   "El GG.SS. es coadyuvante: colabora con la seguridad pública pero no ejerce autoridad. La autoridad corresponde a Carabineros y PDI.",
		},
		Category: "Legal",
	},
	{
		Question: model.Question{
			ID:            "L004",
			QuestionText:  "¿Cuál es el monto mínimo del seguro de vida obligatorio para el GG.SS.?",
			Options:       []string{"100 UF", "250 UF", "500 UF", "1000 UF"},
			CorrectAnswer: 2,
			Explanation:   "La Ley 21.659 exige un seguro de vida mínimo de 500 UF, irrenunciable y costeado íntegramente por la empresa empleadora.",
		},
		Category: "Legal",
	},

	// ─── Privacidad y datos (Ley 19.628) ───────────────────────────────
	{
		Question: model.Question{
			ID:            "P001",
			QuestionText:  "¿Qué significan las siglas ARCO en la Ley 19.628?",
			Options:       []string{"Acceso, Rectificación, Cancelación y Oposición", "Alarma, Respuesta, Control y Operación", "Autorización, Registro, Cobro y Orden", "Archivo, Red, Comunicación y On-line"},
			CorrectAnswer: 0,
			Explanation:   "Los derechos ARCO son: Acceso, Rectificación, Cancelación y Oposición. Son las facultades que tiene el titular para controlar sus datos personales.",
		},
		Category: "Privacidad",
	},
	{
		Question: model.Question{
			ID:            "P002",
			QuestionText:  "¿Cuál es el principio que indica que los datos solo pueden usarse para el fin que fueron recolectados?",
			Options:       []string{"Principio de Calidad", "Principio de Finalidad", "Principio de Seguridad", "Principio de Licitud"},
			CorrectAnswer: 1,
			Explanation:   "El Principio de Finalidad establece que el tratamiento de datos personales debe limitarse a los fines específicos autorizados por el titular.",
		},
		Category: "Privacidad",
	},
	{
		Question: model.Question{
			ID:            "P003",
			QuestionText:  "¿Qué tipo de datos requieren un mayor resguardo y no pueden tratarse sin autorización expresa?",
			Options:       []string{"Datos Públicos", "Datos de Identificación", "Datos Sensibles", "Datos Estadísticos"},
			CorrectAnswer: 2,
			Explanation:   "Los Datos Sensibles (salud, ideología, vida privada) tienen una protección especial y su tratamiento está restringido por ley.",
		},
		Category: "Privacidad",
	},

	// ─── Derechos Humanos ──────────────────────────────────────────────
	{
		Question: model.Question{
			ID:            "H001",
			QuestionText:  "¿Qué artículo de la Constitución Política de Chile garantiza la 'Igualdad ante la Ley'?",
			Options:       []string{"Artículo 1", "Artículo 19 N°2", "Artículo 19 N°7", "Artículo 5"},
			CorrectAnswer: 1,
			Explanation:   "El Artículo 19 N°2 establece que hombres y mujeres son iguales ante la ley y prohíbe diferencias arbitrarias.",
		},
		Category: "DD.HH.",
	},
	{
		Question: model.Question{
			ID:            "H002",
			QuestionText:  "¿Qué característica de los DD.HH. indica que no caducan ni se pierden con el tiempo?",
			Options:       []string{"Universales", "Inalienables", "Imprescriptibles", "Indivisibles"},
			CorrectAnswer: 2,
			Explanation:   "La imprescriptibilidad significa que los derechos humanos no pierden su vigencia por el paso del tiempo.",
		},
		Category: "DD.HH.",
	},
	{
		Question: model.Question{
			ID:            "H003",
			QuestionText:  "¿A qué apunta la 'Convención Belém do Pará' reconocida en Chile?",
			Options:       []string{"A la protección de datos", "A prevenir y erradicar la violencia contra la mujer", "A regular el contrato de trabajo", "A los derechos de autor"},
			CorrectAnswer: 1,
			Explanation:   "Es el tratado fundamental para la protección de la mujer frente a cualquier forma de violencia.",
		},
		Category: "DD.HH.",
	},

	// ─── Ética y probidad ──────────────────────────────────────────────
	{
		Question: model.Question{
			ID:            "E001",
			QuestionText:  "¿Qué principio ético exige privilegiar el interés general sobre el interés particular?",
			Options:       []string{"Moralidad", "Probidad", "Eficiencia", "Cortesía"},
			CorrectAnswer: 1,
			Explanation:   "La Probidad exige una conducta honesta y leal, anteponiendo siempre el bien común al beneficio personal.",
		},
		Category: "Ética",
	},
	{
		Question: model.Question{
			ID:            "E002",
			QuestionText:  "¿Cuál es el plazo para denunciar una discriminación arbitraria según la Ley Zamudio?",
			Options:       []string{"30 días", "60 días", "90 días", "180 días"},
			CorrectAnswer: 2,
			Explanation:   "La Ley 20.609 establece un plazo de 90 días corridos desde que ocurre el hecho para interponer la acción judicial.",
		},
		Category: "Ética",
	},
	{
		Question: model.Question{
			ID:            "E003",
			QuestionText:  "¿Qué busca la Ley 21.675 respecto a las mujeres?",
			Options:       []string{"Aumentar sus impuestos", "Prevención, sanción y erradicación de la violencia de género", "Cambiar su uniforme de trabajo", "Regular su horario de colación"},
			CorrectAnswer: 1,
			Explanation:   "La Ley 21.675 es la ley integral contra la violencia hacia las mujeres en todos sus ámbitos.",
		},
		Category: "Ética",
	},

	// ─── Uniformes (Res. 2183) ─────────────────────────────────────────
	{
		Question: model.Question{
			ID:            "R001",
			QuestionText:  "¿De qué color debe ser la camisa oficial del GG.SS. según la normativa vigente en 2026?",
			Options:       []string{"Azul", "Blanca", "Gris Perla", "Negra"},
			CorrectAnswer: 2,
			Explanation:   "La Res. 2183 exige camisa Gris Perla para diferenciar claramente al guardia de otras instituciones según el estándar 2026.",
		},
		Category: "Res. 2183",
	},
	{
		Question: model.Question{
			ID:            "R002",
			QuestionText:  "¿Qué prenda de alta visibilidad forma parte del uniforme reglamentario del GG.SS.?",
			Options:       []string{"Chaleco Rojo Fluorescente", "Casaca Azul Marino", "Gorro Amarillo", "Banda Verde Reflectante"},
			CorrectAnswer: 0,
			Explanation:   "La Res. 2183 incorpora el chaleco rojo fluorescente como prenda distintiva obligatoria del Guardia de Seguridad.",
		},
		Category: "Res. 2183",
	},

	// ─── Dificultad alta ───────────────────────────────────────────────
	{
		Question: model.Question{
			ID:            "D001",
			QuestionText:  "Un GG.SS. presencia un delito flagrante dentro de la instalación. ¿Cuál es el límite exacto de su actuación?",
			Options:       []string{"Puede detener e interrogar al autor", "Puede retener al autor y entregarlo de inmediato a Carabineros", "Debe perseguir al autor fuera del recinto", "No puede intervenir en ningún caso"},
			CorrectAnswer: 1,
			Explanation:   "En flagrancia cualquier persona puede retener al autor (Art. 129 CPP), pero el GG.SS. debe entregarlo de inmediato a Carabineros, sin interrogar ni investigar.",
		},
		Category: "Dificultad",
	},
	{
		Question: model.Question{
			ID:            "D002",
			QuestionText:  "¿Quién debe costear la capacitación OS10 del Guardia de Seguridad contratado?",
			Options:       []string{"El propio guardia", "El Estado", "La empresa empleadora", "La municipalidad respectiva"},
			CorrectAnswer: 2,
			Explanation:   "La Ley 21.659 radica en la empresa empleadora el costo de la formación y del re-entrenamiento del personal de seguridad privada.",
		},
		Category: "Dificultad",
	},
	{
		Question: model.Question{
			ID:            "D003",
			QuestionText:  "Una cámara de vigilancia capta a un trabajador en su horario de colación. ¿Qué principio limita el uso de esa grabación?",
			Options:       []string{"Principio de Finalidad", "Principio de Flagrancia", "Principio de Oportunidad", "Principio de Publicidad"},
			CorrectAnswer: 0,
			Explanation:   "Las grabaciones solo pueden usarse para el fin de seguridad que justificó su captura; usarlas para controlar al trabajador vulnera el Principio de Finalidad de la Ley 19.628.",
		},
		Category: "Dificultad",
	},
}
